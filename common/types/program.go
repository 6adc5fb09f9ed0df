package types

import (
	"fmt"
	"regexp"

	"github.com/spacemeshos/go-scale"

	"github.com/slingshotlabs/go-slingshot/log"
)

// ProgramID identifies a deployed program by name, e.g. `token.sling`.
type ProgramID string

var programIDRe = regexp.MustCompile(`^[a-z][a-z0-9_]*(\.[a-z]+)?$`)

// String implements fmt.Stringer.
func (id ProgramID) String() string { return string(id) }

// Bytes returns the ProgramID as a byte slice.
func (id ProgramID) Bytes() []byte { return []byte(id) }

// Field returns a log field. Implements the LoggableField interface.
func (id ProgramID) Field() log.Field { return log.String("program_id", string(id)) }

// Validate checks that the ID is a well-formed program name.
func (id ProgramID) Validate() error {
	if id == "" {
		return fmt.Errorf("program id is empty")
	}
	if !programIDRe.MatchString(string(id)) {
		return fmt.Errorf("program id %q is not a valid program name", string(id))
	}
	return nil
}

// Program is a deployed program: its manifest-declared surface plus the
// source it was deployed with.
type Program struct {
	ID    ProgramID
	Owner Address
	// Functions lists the callable function names declared in Source.
	Functions []string
	// Source is the program source text.
	Source []byte
	// Checksum is the hash of Source.
	Checksum Hash32
}

// HasFunction reports whether the program declares the given function.
func (p *Program) HasFunction(name string) bool {
	for _, fn := range p.Functions {
		if fn == name {
			return true
		}
	}
	return false
}

// CalcChecksum computes the checksum over the program source.
func (p *Program) CalcChecksum() Hash32 {
	return CalcHash32(p.Source)
}

// EncodeScale implements scale codec interface.
func (p *Program) EncodeScale(enc *scale.Encoder) (total int, err error) {
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, []byte(p.ID), maxWireString)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := p.Owner.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := encodeStringSlice(enc, p.Functions)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := scale.EncodeByteSliceWithLimit(enc, p.Source, 1<<20) // matches the deploy body cap
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		n, err := p.Checksum.EncodeScale(enc)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}

// DecodeScale implements scale codec interface.
func (p *Program) DecodeScale(dec *scale.Decoder) (total int, err error) {
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, maxWireString)
		if err != nil {
			return total, err
		}
		total += n
		p.ID = ProgramID(field)
	}
	{
		n, err := p.Owner.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	{
		field, n, err := decodeStringSlice(dec)
		if err != nil {
			return total, err
		}
		total += n
		p.Functions = field
	}
	{
		field, n, err := scale.DecodeByteSliceWithLimit(dec, 1<<20) // matches the deploy body cap
		if err != nil {
			return total, err
		}
		total += n
		p.Source = field
	}
	{
		n, err := p.Checksum.DecodeScale(dec)
		if err != nil {
			return total, err
		}
		total += n
	}
	return total, nil
}
