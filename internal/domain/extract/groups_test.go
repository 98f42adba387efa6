package extract_test

import (
	"testing"

	"github.com/eqdomains/eqdomains/internal/domain/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const storeSnippet = `namespace Bit.Core.Utilities
{
    public static class StaticStore
    {
        static StaticStore()
        {
            GlobalDomains = new Dictionary<GlobalEquivalentDomainsType, IEnumerable<string>>();

            GlobalDomains.Add(GlobalEquivalentDomainsType.Ameritrade, new List<string> { "ameritrade.com", "tdameritrade.com" });
            GlobalDomains.Add(GlobalEquivalentDomainsType.Apple, new List<string> { "apple.com", "icloud.com" });
            GlobalDomains.Add(GlobalEquivalentDomainsType.Google, new List<string> { "google.com", "youtube.com", "gmail.com" });
        }

        public static IDictionary<GlobalEquivalentDomainsType, IEnumerable<string>> GlobalDomains { get; set; }
    }
}
`

func TestGroups_ParsesRegistrationLines(t *testing.T) {
	groups := extract.Groups(storeSnippet)

	require.Equal(t, 3, groups.Len())

	domains, ok := groups.Get("Apple")
	require.True(t, ok)
	assert.Equal(t, []string{"apple.com", "icloud.com"}, domains)

	domains, ok = groups.Get("Google")
	require.True(t, ok)
	assert.Equal(t, []string{"google.com", "youtube.com", "gmail.com"}, domains)
}

func TestGroups_PreservesLineOrder(t *testing.T) {
	groups := extract.Groups(storeSnippet)

	assert.Equal(t, []string{"Ameritrade", "Apple", "Google"}, groups.Names())
}

func TestGroups_TrimsSpacesAndQuotes(t *testing.T) {
	groups := extract.Groups(`GlobalDomains.Add(GlobalEquivalentDomainsType.Foo, new List<string> {  "a.com" ,"b.com",  "c.com"  });`)

	domains, ok := groups.Get("Foo")
	require.True(t, ok)
	assert.Equal(t, []string{"a.com", "b.com", "c.com"}, domains)
}

func TestGroups_SingleDomain(t *testing.T) {
	groups := extract.Groups(`GlobalDomains.Add(GlobalEquivalentDomainsType.Solo, new List<string> { "solo.example" });`)

	domains, ok := groups.Get("Solo")
	require.True(t, ok)
	assert.Equal(t, []string{"solo.example"}, domains)
}

func TestGroups_DuplicateKeepsPositionTakesLastList(t *testing.T) {
	text := `GlobalDomains.Add(GlobalEquivalentDomainsType.First, new List<string> { "old.com" });
GlobalDomains.Add(GlobalEquivalentDomainsType.Second, new List<string> { "second.com" });
GlobalDomains.Add(GlobalEquivalentDomainsType.First, new List<string> { "new.com" });`

	groups := extract.Groups(text)

	assert.Equal(t, []string{"First", "Second"}, groups.Names())

	domains, ok := groups.Get("First")
	require.True(t, ok)
	assert.Equal(t, []string{"new.com"}, domains)
}

func TestGroups_SkipsNonRegistrationLines(t *testing.T) {
	groups := extract.Groups(storeSnippet)

	_, ok := groups.Get("GlobalDomains")
	assert.False(t, ok)
}

func TestGroups_CommentedOutRegistrationDoesNotMatch(t *testing.T) {
	groups := extract.Groups(`// GlobalDomains.Add(GlobalEquivalentDomainsType.Gone, new List<string> { "gone.com" });`)

	assert.Equal(t, 0, groups.Len())
}

func TestGroups_EmptyInput(t *testing.T) {
	assert.Equal(t, 0, extract.Groups("").Len())
}
