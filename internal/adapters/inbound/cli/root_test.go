package cli_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/eqdomains/eqdomains/internal/adapters/inbound/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const enumsFixture = `namespace Bit.Core.Enums
{
    public enum GlobalEquivalentDomainsType : byte
    {
        Google = 0,
        Apple = 1,
        Ameritrade = 2,
    }
}
`

const storeFixture = `namespace Bit.Core.Utilities
{
    public static class StaticStore
    {
        static StaticStore()
        {
            GlobalDomains.Add(GlobalEquivalentDomainsType.Ameritrade, new List<string> { "ameritrade.com", "tdameritrade.com" });
            GlobalDomains.Add(GlobalEquivalentDomainsType.Google, new List<string> { "google.com", "youtube.com" });
        }
    }
}
`

const expectedDocument = `[
  {
    "type": 2,
    "domains": [
      "ameritrade.com",
      "tdameritrade.com"
    ],
    "excluded": false
  },
  {
    "type": 0,
    "domains": [
      "google.com",
      "youtube.com"
    ],
    "excluded": false
  }
]`

// newUpstreamServer serves the two fixture files under the default
// repo-relative paths for any revision.
func newUpstreamServer(t *testing.T, enums, store string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch filepath.Base(r.URL.Path) {
		case "GlobalEquivalentDomainsType.cs":
			w.Write([]byte(enums))
		case "StaticStore.cs":
			w.Write([]byte(store))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRootCommand_NoArgsIsUsageError(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong number of arguments")
}

func TestRootCommand_TooManyArgsIsUsageError(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	cmd.SetArgs([]string{"out.json", "main", "extra"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong number of arguments")
}

func TestRootCommand_WritesDocument(t *testing.T) {
	t.Chdir(t.TempDir())
	srv := newUpstreamServer(t, enumsFixture, storeFixture)
	out := filepath.Join(t.TempDir(), "global_domains.json")

	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{out, "main", "--base-url", srv.URL})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, expectedDocument, string(data))
	assert.Contains(t, buf.String(), "2 groups")
}

func TestRootCommand_DefaultsRevisionToMain(t *testing.T) {
	t.Chdir(t.TempDir())

	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if gotPath == "" {
			gotPath = r.URL.Path
		}
		if filepath.Base(r.URL.Path) == "StaticStore.cs" {
			w.Write([]byte(storeFixture))
			return
		}
		w.Write([]byte(enumsFixture))
	}))
	t.Cleanup(srv.Close)

	out := filepath.Join(t.TempDir(), "out.json")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{out, "--base-url", srv.URL})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, gotPath, "/main/")
}

func TestRootCommand_FetchFailureWritesNothing(t *testing.T) {
	t.Chdir(t.TempDir())
	srv := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(srv.Close)

	out := filepath.Join(t.TempDir(), "out.json")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{out, "main", "--base-url", srv.URL})
	require.Error(t, cmd.Execute())

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRootCommand_MissingEnumWritesNothing(t *testing.T) {
	t.Chdir(t.TempDir())
	store := `GlobalDomains.Add(GlobalEquivalentDomainsType.Orphan, new List<string> { "orphan.com" });`
	srv := newUpstreamServer(t, enumsFixture, store)

	out := filepath.Join(t.TempDir(), "out.json")

	cmd := cli.NewRootCmdForTest()
	cmd.SetOut(new(bytes.Buffer))
	cmd.SetArgs([]string{out, "main", "--base-url", srv.URL})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Orphan")

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "eqdomains dev")
}
