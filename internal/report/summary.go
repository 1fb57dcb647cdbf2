package report

import (
	"errors"
	"sort"

	"github.com/bayneri/siteconf/internal/hadoop"
	"github.com/bayneri/siteconf/internal/siteconfig"
	"github.com/hashicorp/go-multierror"
)

const SchemaVersion = "siteconf.components/v1"

const (
	StatusReady      = "ready"
	StatusIncomplete = "incomplete"
)

type Listing struct {
	SchemaVersion string             `json:"schemaVersion"`
	Source        string             `json:"source"`
	Components    []ComponentSummary `json:"components"`
}

type ComponentSummary struct {
	ExecutionID int      `json:"executionId"`
	Name        string   `json:"name"`
	Keys        []string `json:"keys"`
	Status      string   `json:"status"`
	Problems    []string `json:"problems,omitempty"`
}

// Summarize reports, per component and in input order, whether its config
// is complete enough to render all site documents.
func Summarize(source string, doc siteconfig.Document) Listing {
	listing := Listing{
		SchemaVersion: SchemaVersion,
		Source:        source,
		Components:    make([]ComponentSummary, 0, len(doc.LightweightComponents)),
	}
	for _, c := range doc.LightweightComponents {
		summary := ComponentSummary{
			ExecutionID: c.ExecutionID,
			Name:        c.DisplayName(),
			Keys:        c.Keys(),
			Status:      StatusReady,
		}
		if _, err := hadoop.DecodeAll(c.Config); err != nil {
			summary.Status = StatusIncomplete
			summary.Problems = problems(err)
		}
		listing.Components = append(listing.Components, summary)
	}
	return listing
}

func problems(err error) []string {
	var mErr *multierror.Error
	if !errors.As(err, &mErr) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(mErr.Errors))
	for _, inner := range mErr.Errors {
		out = append(out, inner.Error())
	}
	sort.Strings(out)
	return out
}
