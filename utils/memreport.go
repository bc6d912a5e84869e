package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// MemReport is a hierarchical memory usage report for a component.
type MemReport struct {
	Name       string      `json:"name"`
	TotalBytes int         `json:"total_bytes"`
	Count      int         `json:"count,omitempty"`
	Children   []MemReport `json:"children,omitempty"`
}

// Add appends child and folds its size into the parent total.
func (r *MemReport) Add(child MemReport) {
	r.TotalBytes += child.TotalBytes
	r.Children = append(r.Children, child)
}

// Print formats and prints the MemReport as a tree.
func (r MemReport) Print(indent int) {
	fmt.Print(r.render(indent))
}

// JSON returns a JSON string representation of the MemReport.
func (r MemReport) JSON() string {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Sprintf(`{"error": "%s"}`, err.Error())
	}
	return string(b)
}

// String returns the MemReport as an indented tree.
func (r MemReport) String() string {
	return r.render(0)
}

func (r MemReport) render(indent int) string {
	var sb strings.Builder
	r.buildString(&sb, indent)
	return sb.String()
}

func (r MemReport) buildString(sb *strings.Builder, indent int) {
	prefix := strings.Repeat("  ", indent)
	fmt.Fprintf(sb, "%s- %s: %s", prefix, r.Name, humanize.IBytes(uint64(max(r.TotalBytes, 0))))
	if r.Count > 0 {
		fmt.Fprintf(sb, " (%s nodes)", humanize.Comma(int64(r.Count)))
	}
	sb.WriteByte('\n')
	for _, child := range r.Children {
		child.buildString(sb, indent+1)
	}
}
