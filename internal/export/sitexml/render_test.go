package sitexml

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderDefaults(t *testing.T) {
	got, err := Render(Document{
		Name:       "core-site",
		Properties: []Property{{Name: "fs.default.name", Value: "hdfs://nn1:9000"}},
	})
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<?xml-stylesheet type="text/xsl" href="configuration.xsl"?>
<configuration>
	<property>
		<name>fs.default.name</name>
		<value>hdfs://nn1:9000</value>
	</property>
</configuration>
`
	assert.Equal(t, want, string(got))
}

func TestRenderHeaderOverride(t *testing.T) {
	got, err := Render(Document{
		Name:       "mapred-site",
		Headers:    []string{StylesheetHeader},
		Properties: []Property{{Name: "mapreduce.framework.name", Value: "yarn"}},
	})
	require.NoError(t, err)
	lines := strings.Split(string(got), "\n")
	assert.Equal(t, StylesheetHeader, lines[0])
	assert.Equal(t, "<configuration>", lines[1])
	assert.NotContains(t, string(got), DeclarationHeader)

	got, err = Render(Document{Name: "bare", Headers: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "<configuration></configuration>\n", string(got))
}

func TestRenderPreservesOrderAndEscapes(t *testing.T) {
	props := []Property{
		{Name: "b", Value: "2"},
		{Name: "a", Value: "x<y&z"},
		{Name: "c", Value: ""},
	}
	got, err := Render(Document{Name: "ordered", Root: "conf", Properties: props})
	require.NoError(t, err)

	var parsed struct {
		XMLName    xml.Name
		Properties []Property `xml:"property"`
	}
	require.NoError(t, xml.Unmarshal(got, &parsed))
	assert.Equal(t, "conf", parsed.XMLName.Local)
	assert.Equal(t, props, parsed.Properties)
	assert.Contains(t, string(got), "x&lt;y&amp;z")
}

func TestRenderInvalidRoot(t *testing.T) {
	_, err := Render(Document{Name: "broken", Root: "not a name"})
	require.Error(t, err)
}

func TestRenderIsDeterministic(t *testing.T) {
	doc := Document{Name: "hdfs-site", Properties: []Property{{Name: "dfs.replication", Value: "2"}}}
	first, err := Render(doc)
	require.NoError(t, err)
	second, err := Render(doc)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
