// Package datatable formats records for display in a paginated data table
// and renders or exports the result.
//
// A table is configured by an ordered set of [Column] descriptors. Each
// descriptor names the record field to show, a default for missing values,
// and the rules that classify a cell. Records are plain key-value maps of
// [FieldValue], a tagged union of string, number, bool, null and absent.
//
// # Cell Formatting
//
// [FormatCell] resolves one value into a [Cell]:
//
//   - Text: the field stringified, or the column default when the field is
//     absent, null, or an array or object
//   - Styles: "positive" or "negative" when the text parses as a number,
//     "success" or "error" when it matches the column's success or error
//     value ignoring case, and "uppercase" when the column asks for it
//   - CurrencySuffix: " USD" style suffix read from the column's currency
//     field, for currency columns
//
// Formatting never fails. Exporters reuse [Cell.Display], the unstyled text
// plus suffix.
//
// # Pagination
//
// [TotalPages] and [PageWindow] are pure functions:
//
//	pages, err := datatable.TotalPages(23, 10)   // 3
//	datatable.PageWindow(6, 12)                  // [4 5 6 7 8]
//
// [Pager] holds the mutable page state the embedding application owns and
// derives offsets, row ranges and the "Showing X to Y of Z entries" summary.
// [State] adds the search term and sort column and turns them into a
// [Query] for a caller-supplied [Source]. This package never searches or
// sorts records itself.
//
// # Output
//
// [Write] and [Marshal] render a [View] in one of the supported formats:
// JSON, YAML, CSV, TSV, Table, Markdown, HTML, JSONL, XLSX and
// [GoTemplate]. [WriteIter] streams large exports row by row where the
// format allows it, and [FileName] builds a timestamped download name.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat]: unknown format string
//   - [ErrInvalidTemplate]: invalid go-template syntax
//   - [ErrInvalidPageSize]: a page size of zero
//   - [ErrInvalidColumn]: a malformed column descriptor
//   - [ErrInvalidRecord]: input that is not a list of objects
package datatable
