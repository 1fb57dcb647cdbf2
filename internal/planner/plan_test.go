package planner

import (
	"bytes"
	"testing"

	"github.com/bayneri/siteconf/internal/hadoop"
	"github.com/bayneri/siteconf/internal/siteconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() siteconfig.Document {
	return siteconfig.Document{LightweightComponents: []siteconfig.Component{
		{
			ExecutionID: 3,
			Config: map[string]any{
				"fs_default_name":                   "nn1",
				"hdfs_dfs_replication":              2,
				"yarn_app_mapreduce_am_resource_mb": 1024,
				"mapreduce_map_memory_mb":           512,
				"mapreduce_reduce_memory_mb":        512,
			},
		},
		{
			ExecutionID: 4,
			Name:        "incomplete",
			Config:      map[string]any{"fs_default_name": "nn4"},
		},
	}}
}

func TestBuild(t *testing.T) {
	plan, err := Build(testDocument(), 3, Options{})
	require.NoError(t, err)
	assert.Equal(t, 3, plan.ExecutionID)
	assert.Equal(t, "component-3", plan.Component)

	require.Len(t, plan.Documents, 3)
	for i, name := range hadoop.SiteNames {
		assert.Equal(t, name, plan.Documents[i].Name)
	}

	core, err := plan.Document(hadoop.CoreSiteName)
	require.NoError(t, err)
	assert.Equal(t, "fs.default.name", core.Properties[0].Name)
	assert.Equal(t, "hdfs://nn1:9000", core.Properties[0].Value)

	_, err = plan.Document("yarn-site")
	require.Error(t, err)
}

func TestBuildOverrides(t *testing.T) {
	doc := testDocument()
	plan, err := Build(doc, 3, Options{Overrides: map[string]string{"hdfs_dfs_replication": "5"}})
	require.NoError(t, err)

	hdfs, err := plan.Document(hadoop.HDFSSiteName)
	require.NoError(t, err)
	assert.Equal(t, "5", hdfs.Properties[2].Value)
	assert.Equal(t, 2, doc.LightweightComponents[0].Config["hdfs_dfs_replication"])
}

func TestBuildErrors(t *testing.T) {
	_, err := Build(testDocument(), 9, Options{})
	require.ErrorIs(t, err, siteconfig.ErrRecordNotFound)

	_, err = Build(testDocument(), 4, Options{})
	require.ErrorIs(t, err, hadoop.ErrMissingField)
	assert.Contains(t, err.Error(), "execution_id 4")
}

func TestRender(t *testing.T) {
	plan, err := Build(testDocument(), 3, Options{Overrides: map[string]string{"mapreduce_map_memory_mb": "640"}})
	require.NoError(t, err)

	var buf bytes.Buffer
	Render(&buf, plan)
	out := buf.String()
	assert.Contains(t, out, "Execution ID: 3\n")
	assert.Contains(t, out, "Overrides: [mapreduce_map_memory_mb=640]\n")
	assert.Contains(t, out, "- hdfs-site.xml (3 properties)\n")
	assert.Contains(t, out, "    mapreduce.map.memory.mb = 640\n")
}
