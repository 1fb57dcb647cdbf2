package report

import (
	"bytes"
	"os"
	"testing"

	"github.com/bayneri/siteconf/internal/siteconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() siteconfig.Document {
	return siteconfig.Document{LightweightComponents: []siteconfig.Component{
		{
			ExecutionID: 5,
			Name:        "worker",
			Config: map[string]any{
				"fs_default_name":                   "nn5",
				"hdfs_dfs_replication":              1,
				"yarn_app_mapreduce_am_resource_mb": 1024,
				"mapreduce_map_memory_mb":           512,
				"mapreduce_reduce_memory_mb":        512,
			},
		},
		{
			ExecutionID: 9,
			Config:      map[string]any{"fs_default_name": "nn9"},
		},
	}}
}

func TestWriteListingJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, Summarize("site.yaml", testDocument())))

	golden, err := os.ReadFile("./testdata/components.json")
	require.NoError(t, err)
	assert.Equal(t, string(golden), buf.String())
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	WriteTable(&buf, Summarize("site.yaml", testDocument()))

	assert.Equal(t, "EXECUTION_ID\tNAME\tSTATUS\tKEYS\n"+
		"5\tworker\tready\tfs_default_name,hdfs_dfs_replication,mapreduce_map_memory_mb,mapreduce_reduce_memory_mb,yarn_app_mapreduce_am_resource_mb\n"+
		"9\tcomponent-9\tincomplete\tfs_default_name\n", buf.String())
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	WriteMarkdown(&buf, Summarize("site.yaml", testDocument()))
	out := buf.String()

	assert.Contains(t, out, "- Source: site.yaml\n")
	assert.Contains(t, out, "| 9 | component-9 | incomplete | fs_default_name |\n")
	assert.Contains(t, out, "## Problems\n")
	assert.Contains(t, out, "- 9: hdfs-site: config.hdfs_dfs_replication is required\n")
}

func TestWriteMarkdownAllReady(t *testing.T) {
	doc := testDocument()
	doc.LightweightComponents = doc.LightweightComponents[:1]

	var buf bytes.Buffer
	WriteMarkdown(&buf, Summarize("site.yaml", doc))
	assert.NotContains(t, buf.String(), "Problems")
}
