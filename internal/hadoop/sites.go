// Package hadoop maps a lightweight component's config onto the fixed
// property sets of core-site.xml, hdfs-site.xml and mapred-site.xml.
package hadoop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bayneri/siteconf/internal/export/sitexml"
	"github.com/hashicorp/go-multierror"
)

const (
	CoreSiteName   = "core-site"
	HDFSSiteName   = "hdfs-site"
	MapredSiteName = "mapred-site"

	NameNodePort  = 9000
	DataNodeDir   = "/root/data/dataNode"
	NameNodeDir   = "/root/data/nameNode"
	FrameworkName = "yarn"
)

// SiteNames lists the documents in the order they are produced.
var SiteNames = []string{CoreSiteName, HDFSSiteName, MapredSiteName}

type CoreSite struct {
	FSDefaultName string `mapstructure:"fs_default_name"`
}

func DecodeCoreSite(config map[string]any) (CoreSite, error) {
	var s CoreSite
	if err := decode(CoreSiteName, config, &s); err != nil {
		return CoreSite{}, err
	}
	if strings.TrimSpace(s.FSDefaultName) == "" {
		return CoreSite{}, &InvalidFieldError{Site: CoreSiteName, Key: "fs_default_name", Reason: "must not be blank"}
	}
	return s, nil
}

func (s CoreSite) Document() sitexml.Document {
	return sitexml.Document{
		Name: CoreSiteName,
		Properties: []sitexml.Property{
			{Name: "fs.default.name", Value: fmt.Sprintf("hdfs://%s:%d", s.FSDefaultName, NameNodePort)},
		},
	}
}

type HDFSSite struct {
	Replication int `mapstructure:"hdfs_dfs_replication"`
}

func DecodeHDFSSite(config map[string]any) (HDFSSite, error) {
	var s HDFSSite
	if err := decode(HDFSSiteName, config, &s); err != nil {
		return HDFSSite{}, err
	}
	if s.Replication < 1 {
		return HDFSSite{}, &InvalidFieldError{Site: HDFSSiteName, Key: "hdfs_dfs_replication", Reason: "must be at least 1"}
	}
	return s, nil
}

func (s HDFSSite) Document() sitexml.Document {
	return sitexml.Document{
		Name: HDFSSiteName,
		Properties: []sitexml.Property{
			{Name: "dfs.datanode.data.dir", Value: DataNodeDir},
			{Name: "dfs.namenode.name.dir", Value: NameNodeDir},
			{Name: "dfs.replication", Value: strconv.Itoa(s.Replication)},
		},
	}
}

type MapredSite struct {
	AMResourceMB   int `mapstructure:"yarn_app_mapreduce_am_resource_mb"`
	MapMemoryMB    int `mapstructure:"mapreduce_map_memory_mb"`
	ReduceMemoryMB int `mapstructure:"mapreduce_reduce_memory_mb"`
}

func DecodeMapredSite(config map[string]any) (MapredSite, error) {
	var s MapredSite
	if err := decode(MapredSiteName, config, &s); err != nil {
		return MapredSite{}, err
	}

	var mErr *multierror.Error
	for _, field := range []struct {
		key   string
		value int
	}{
		{"yarn_app_mapreduce_am_resource_mb", s.AMResourceMB},
		{"mapreduce_map_memory_mb", s.MapMemoryMB},
		{"mapreduce_reduce_memory_mb", s.ReduceMemoryMB},
	} {
		if field.value <= 0 {
			mErr = multierror.Append(mErr, &InvalidFieldError{Site: MapredSiteName, Key: field.key, Reason: "must be a positive number of megabytes"})
		}
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return MapredSite{}, err
	}
	return s, nil
}

// mapred-site.xml carries the stylesheet header only, no XML declaration.
func (s MapredSite) Document() sitexml.Document {
	return sitexml.Document{
		Name:    MapredSiteName,
		Headers: []string{sitexml.StylesheetHeader},
		Properties: []sitexml.Property{
			{Name: "mapreduce.framework.name", Value: FrameworkName},
			{Name: "yarn.app.mapreduce.am.resource.mb", Value: strconv.Itoa(s.AMResourceMB)},
			{Name: "mapreduce.map.memory.mb", Value: strconv.Itoa(s.MapMemoryMB)},
			{Name: "mapreduce.reduce.memory.mb", Value: strconv.Itoa(s.ReduceMemoryMB)},
		},
	}
}

// Sites holds all three decoded site configs of one component.
type Sites struct {
	Core   CoreSite
	HDFS   HDFSSite
	Mapred MapredSite
}

// DecodeAll decodes every site so that all missing or invalid keys are
// reported together, before anything is rendered.
func DecodeAll(config map[string]any) (Sites, error) {
	var (
		sites Sites
		mErr  *multierror.Error
		err   error
	)
	if sites.Core, err = DecodeCoreSite(config); err != nil {
		mErr = multierror.Append(mErr, err)
	}
	if sites.HDFS, err = DecodeHDFSSite(config); err != nil {
		mErr = multierror.Append(mErr, err)
	}
	if sites.Mapred, err = DecodeMapredSite(config); err != nil {
		mErr = multierror.Append(mErr, err)
	}
	if err := mErr.ErrorOrNil(); err != nil {
		return Sites{}, err
	}
	return sites, nil
}

func (s Sites) Documents() []sitexml.Document {
	return []sitexml.Document{s.Core.Document(), s.HDFS.Document(), s.Mapred.Document()}
}

// Document returns the named site document.
func (s Sites) Document(name string) (sitexml.Document, error) {
	switch name {
	case CoreSiteName:
		return s.Core.Document(), nil
	case HDFSSiteName:
		return s.HDFS.Document(), nil
	case MapredSiteName:
		return s.Mapred.Document(), nil
	default:
		return sitexml.Document{}, fmt.Errorf("unknown site document %q, expected one of %s", name, strings.Join(SiteNames, ", "))
	}
}
