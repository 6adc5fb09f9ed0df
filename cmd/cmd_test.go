package cmd

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slingshotlabs/go-slingshot/api/node/client"
	"github.com/slingshotlabs/go-slingshot/api/node/models"
	"github.com/slingshotlabs/go-slingshot/common/types"
	"github.com/slingshotlabs/go-slingshot/program"
	"github.com/slingshotlabs/go-slingshot/signing"
)

// runCLI executes the slingshot command against a stub node. A nil handler
// leaves the endpoint at its default, which no passing invocation may dial.
func runCLI(tb testing.TB, handler http.Handler, args ...string) (string, error) {
	tb.Helper()
	if handler != nil {
		srv := httptest.NewServer(handler)
		tb.Cleanup(srv.Close)
		args = append(args, "--endpoint", srv.URL)
	}
	root := RootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

// forbidRequests fails the test on any request: the invocation under test
// must be rejected before the node is contacted.
func forbidRequests(tb testing.TB) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tb.Errorf("unexpected request to the node: %s %s", r.Method, r.URL.Path)
		w.WriteHeader(http.StatusInternalServerError)
	})
}

func respond(tb testing.TB, w http.ResponseWriter, v any) {
	tb.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(tb, json.NewEncoder(w).Encode(v))
}

func writeProgramDir(tb testing.TB, manifest, source string) string {
	tb.Helper()
	dir := tb.TempDir()
	require.NoError(tb, os.WriteFile(filepath.Join(dir, program.ManifestFilename), []byte(manifest), 0o600))
	require.NoError(tb, os.WriteFile(filepath.Join(dir, program.SourceFilename), []byte(source), 0o600))
	return dir
}

func TestHelp(t *testing.T) {
	out, err := runCLI(t, nil)
	require.NoError(t, err)
	require.Contains(t, out, "Usage:")
	require.Contains(t, out, "pour")
}

func TestUnknownVerb(t *testing.T) {
	_, err := runCLI(t, forbidRequests(t), "teleport")
	require.ErrorIs(t, err, ErrUnknownVerb)
	require.ErrorContains(t, err, "teleport")
	require.Equal(t, exitUsage, exitCode(err))

	_, err = runCLI(t, forbidRequests(t), "view", "teleport")
	require.ErrorIs(t, err, ErrUnknownVerb)
}

func TestVersionCmd(t *testing.T) {
	t.Cleanup(func() { Version, Commit = "", "" })
	Version = "0.3.1"
	Commit = "f00dbabe"
	out, err := runCLI(t, nil, "version")
	require.NoError(t, err)
	require.Equal(t, "0.3.1+f00dbabe\n", out)
}

func TestPour(t *testing.T) {
	t.Run("forwards the request", func(t *testing.T) {
		var got models.PourRequest
		mux := http.NewServeMux()
		mux.HandleFunc("POST /testnet3/faucet/pour", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			respond(t, w, models.PourResponse{
				Address:       got.Address,
				Balance:       got.Amount,
				TransactionID: types.EmptyTransactionID.String(),
			})
		})
		out, err := runCLI(t, mux, "pour", "abc123", "50")
		require.NoError(t, err)
		// the address goes out exactly as typed, the node decides what
		// it means
		require.Equal(t, models.PourRequest{Address: "abc123", Amount: 50}, got)
		require.Contains(t, out, "Poured 50 gates into abc123")
	})

	t.Run("missing arguments", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "pour")
		require.ErrorIs(t, err, ErrMissingArgument)
		require.ErrorContains(t, err, "address")

		_, err = runCLI(t, forbidRequests(t), "pour", "abc123")
		require.ErrorIs(t, err, ErrMissingArgument)
		require.ErrorContains(t, err, "amount")
		require.Equal(t, exitUsage, exitCode(err))
	})

	t.Run("malformed amount", func(t *testing.T) {
		for _, amount := range []string{"notanumber", "-5", "1.5", "18446744073709551616"} {
			_, err := runCLI(t, forbidRequests(t), "pour", "abc123", amount)
			require.ErrorIs(t, err, ErrMalformedArgument, "amount %q", amount)
		}
		_, err := runCLI(t, forbidRequests(t), "pour", "abc123", "notanumber")
		require.ErrorContains(t, err, "not a non-negative integer")
	})

	t.Run("trailing argument", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "pour", "abc123", "50", "extra")
		require.ErrorIs(t, err, ErrMalformedArgument)
	})

	t.Run("faucet failure passes through", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /testnet3/faucet/pour", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			respond(t, w, models.Error{Error: "no record with sufficient balance"})
		})
		_, err := runCLI(t, mux, "pour", "abc123", "50")
		require.ErrorIs(t, err, client.ErrInvalidRequest)
		require.ErrorContains(t, err, "no record with sufficient balance")
		require.Equal(t, exitFailure, exitCode(err))
	})
}

func TestDeploy(t *testing.T) {
	const source = "program counter.sling;\n\nfunction increment:\n    add r0 r0 into r1;\n"
	manifest := `{"program": "counter.sling", "version": "0.1.0"}`

	t.Run("forwards the source", func(t *testing.T) {
		dir := writeProgramDir(t, manifest, source)
		var got models.DeployRequest
		mux := http.NewServeMux()
		mux.HandleFunc("POST /testnet3/program/deploy", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			respond(t, w, models.DeployResponse{TransactionID: types.EmptyTransactionID.String()})
		})
		out, err := runCLI(t, mux, "deploy", "--path", dir, "--fee", "7")
		require.NoError(t, err)
		require.Equal(t, "counter.sling", got.Program.ID)
		require.Equal(t, source, got.Program.Source)
		require.EqualValues(t, 7, got.AdditionalFee)
		require.Contains(t, out, "Deployed counter.sling")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "deploy")
		require.ErrorIs(t, err, ErrMissingArgument)
		require.ErrorContains(t, err, "--path")
	})

	t.Run("path is not a directory", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "deploy", "--path", "/nonexistent")
		require.ErrorIs(t, err, ErrMalformedArgument)
		require.ErrorContains(t, err, "not a program directory")
	})

	t.Run("manifest rejected", func(t *testing.T) {
		dir := writeProgramDir(t, `{"version": "0.1.0"}`, source)
		_, err := runCLI(t, forbidRequests(t), "deploy", "--path", dir)
		require.ErrorIs(t, err, ErrMalformedArgument)
	})
}

func TestExecute(t *testing.T) {
	t.Run("forwards inputs verbatim", func(t *testing.T) {
		var got models.ExecuteRequest
		mux := http.NewServeMux()
		mux.HandleFunc("POST /testnet3/program/execute", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			respond(t, w, models.ExecuteResponse{TransactionID: types.EmptyTransactionID.String()})
		})
		out, err := runCLI(t, mux, "execute", "myprogram", "myfunction", "1u8", "2u8")
		require.NoError(t, err)
		require.Equal(t, "myprogram", got.ProgramID)
		require.Equal(t, "myfunction", got.Function)
		require.Equal(t, []string{"1u8", "2u8"}, got.Inputs)
		require.Contains(t, out, "Executed myprogram/myfunction")
	})

	t.Run("no inputs", func(t *testing.T) {
		var got models.ExecuteRequest
		mux := http.NewServeMux()
		mux.HandleFunc("POST /testnet3/program/execute", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			respond(t, w, models.ExecuteResponse{TransactionID: types.EmptyTransactionID.String()})
		})
		_, err := runCLI(t, mux, "execute", "myprogram", "myfunction")
		require.NoError(t, err)
		require.Empty(t, got.Inputs)
	})

	t.Run("missing function", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "execute", "myprogram")
		require.ErrorIs(t, err, ErrMissingArgument)
		require.ErrorContains(t, err, "function")
	})

	t.Run("bad program name", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "execute", "9bad", "myfunction")
		require.ErrorIs(t, err, ErrMalformedArgument)
	})

	t.Run("bad function name", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "execute", "myprogram", "My-Function")
		require.ErrorIs(t, err, ErrMalformedArgument)
	})
}

func TestViewRecord(t *testing.T) {
	signer, err := signing.NewEdSigner()
	require.NoError(t, err)
	viewKey := signer.PublicKey().String()
	account := types.GenerateAddress(signer.PublicKey().Bytes())

	recordsHandler := func(t *testing.T, scope string, records map[string]models.Record) http.Handler {
		mux := http.NewServeMux()
		mux.HandleFunc("POST /testnet3/records/"+scope, func(w http.ResponseWriter, r *http.Request) {
			var req models.RecordViewRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, viewKey, req.ViewKey)
			respond(t, w, models.RecordViewResponse{Records: records})
		})
		return mux
	}

	t.Run("explicit key", func(t *testing.T) {
		records := map[string]models.Record{
			"0x01": {Owner: account.String(), Value: 100, Nonce: 1},
			"0x02": {Owner: account.String(), Value: 900, Nonce: 2},
		}
		out, err := runCLI(t, recordsHandler(t, "all", records), "view", "record", "--key", viewKey)
		require.NoError(t, err)
		require.Contains(t, out, fmt.Sprintf("Found 2 record(s) for account %s", account))
		require.Contains(t, out, "0x01")
		require.Contains(t, out, "value 900")
	})

	t.Run("scope picks the route", func(t *testing.T) {
		records := map[string]models.Record{
			"0x03": {Owner: account.String(), Value: 5, Nonce: 3},
		}
		out, err := runCLI(t, recordsHandler(t, "spent", records), "view", "record", "--key", viewKey, "--spent")
		require.NoError(t, err)
		require.Contains(t, out, fmt.Sprintf("Found 1 spent record(s) for account %s", account))
	})

	t.Run("defaults to the node account", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("GET /testnet3/development/viewKey", func(w http.ResponseWriter, r *http.Request) {
			respond(t, w, viewKey)
		})
		mux.HandleFunc("POST /testnet3/records/unspent", func(w http.ResponseWriter, r *http.Request) {
			var req models.RecordViewRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			require.Equal(t, viewKey, req.ViewKey)
			respond(t, w, models.RecordViewResponse{Records: nil})
		})
		out, err := runCLI(t, mux, "view", "record", "--unspent")
		require.NoError(t, err)
		require.Contains(t, out, fmt.Sprintf("Found 0 unspent record(s) for account %s", account))
	})

	t.Run("key from program manifest", func(t *testing.T) {
		manifest := fmt.Sprintf(
			`{"program": "counter.sling", "version": "0.1.0", "development": {"private_key": %q}}`,
			hex.EncodeToString(signer.PrivateKey()))
		dir := writeProgramDir(t, manifest, "program counter.sling;\n")
		out, err := runCLI(t, recordsHandler(t, "all", nil), "view", "record", "--path", dir)
		require.NoError(t, err)
		require.Contains(t, out, account.String())
	})

	t.Run("malformed key", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "view", "record", "--key", "zz")
		require.ErrorIs(t, err, ErrMalformedArgument)

		_, err = runCLI(t, forbidRequests(t), "view", "record", "--key", "abcd")
		require.ErrorIs(t, err, ErrMalformedArgument)
		require.ErrorContains(t, err, "bytes")
	})

	t.Run("exclusive flags", func(t *testing.T) {
		_, err := runCLI(t, forbidRequests(t), "view", "record", "--key", viewKey, "--spent", "--unspent")
		require.ErrorIs(t, err, ErrMalformedArgument)

		dir := t.TempDir()
		_, err = runCLI(t, forbidRequests(t), "view", "record", "--key", viewKey, "--path", dir)
		require.ErrorIs(t, err, ErrMalformedArgument)
	})
}

func TestEndpointEnv(t *testing.T) {
	poured := false
	mux := http.NewServeMux()
	mux.HandleFunc("POST /testnet3/faucet/pour", func(w http.ResponseWriter, r *http.Request) {
		poured = true
		respond(t, w, models.PourResponse{Address: "abc123", Balance: 50})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	t.Setenv(EndpointEnv, srv.URL)

	_, err := runCLI(t, nil, "pour", "abc123", "50")
	require.NoError(t, err)
	require.True(t, poured, "the environment endpoint was not used")
}

func TestExitCodes(t *testing.T) {
	require.Equal(t, exitOK, exitCode(nil))
	require.Equal(t, exitUsage, exitCode(fmt.Errorf("%w: %q", ErrUnknownVerb, "x")))
	require.Equal(t, exitUsage, exitCode(fmt.Errorf("%w: amount", ErrMissingArgument)))
	require.Equal(t, exitUsage, exitCode(fmt.Errorf("%w: amount", ErrMalformedArgument)))
	require.Equal(t, exitFailure, exitCode(fmt.Errorf("pouring: %w", client.ErrInvalidRequest)))
	require.Equal(t, exitFailure, exitCode(fmt.Errorf("connection refused")))
}
