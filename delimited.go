package biom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/otulab/biom/matrix"
)

const delimitedComment = "# Constructed from biom file"

// MetadataFormatter renders one metadata value for a delimited export.
type MetadataFormatter func(v any) string

type delimitedOptions struct {
	delimiter   string
	headerKey   string
	headerValue string
	mdFormatter MetadataFormatter
}

// DelimitedOption configures a delimited export.
type DelimitedOption func(*delimitedOptions)

// WithDelimiter sets the field delimiter (default tab).
func WithDelimiter(d string) DelimitedOption {
	return func(o *delimitedOptions) { o.delimiter = d }
}

// WithHeaderKey selects an observation metadata key to append as a trailing
// column. Must be paired with WithHeaderValue.
func WithHeaderKey(key string) DelimitedOption {
	return func(o *delimitedOptions) { o.headerKey = key }
}

// WithHeaderValue sets the column title for the metadata column selected by
// WithHeaderKey. Must be paired with WithHeaderKey.
func WithHeaderValue(value string) DelimitedOption {
	return func(o *delimitedOptions) { o.headerValue = value }
}

// WithMetadataFormatter overrides how metadata column values are rendered.
func WithMetadataFormatter(f MetadataFormatter) DelimitedOption {
	return func(o *delimitedOptions) { o.mdFormatter = f }
}

// Delimited renders the table as delimited text: a comment line, a header
// line of sample ids, then one line per observation. With a header key/value
// pair, each observation's metadata value under the key is appended as a
// trailing tab-separated column regardless of the configured delimiter
// (absent values render empty). An empty table fails with
// ErrEmptyTable; supplying only one of the header pair fails with
// ErrMissingHeaderPair.
func (t *Table) Delimited(optFns ...DelimitedOption) (string, error) {
	o := delimitedOptions{
		delimiter:   "\t",
		mdFormatter: func(v any) string { return fmt.Sprintf("%v", v) },
	}
	for _, fn := range optFns {
		fn(&o)
	}

	if t.IsEmpty() {
		return "", ErrEmptyTable
	}
	if (o.headerKey == "") != (o.headerValue == "") {
		return "", ErrMissingHeaderPair
	}

	var b strings.Builder
	b.WriteString(delimitedComment)
	b.WriteString("\n#OTU ID")
	for _, id := range t.sampleIDs {
		b.WriteString(o.delimiter)
		b.WriteString(id)
	}
	if o.headerKey != "" {
		// The metadata column is always tab-separated, whatever the delimiter.
		b.WriteString("\t")
		b.WriteString(o.headerValue)
	}

	intTyped := t.data.ElementType() == matrix.ElementInt
	for entry := range t.Observations() {
		b.WriteString("\n")
		b.WriteString(entry.ID)
		for _, v := range entry.Vector {
			b.WriteString(o.delimiter)
			b.WriteString(formatValue(v, intTyped))
		}
		if o.headerKey != "" {
			b.WriteString("\t")
			if v := entry.Metadata.Get(o.headerKey); v != nil {
				b.WriteString(o.mdFormatter(v))
			}
		}
	}
	return b.String(), nil
}

func formatValue(v float64, intTyped bool) string {
	if intTyped {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
