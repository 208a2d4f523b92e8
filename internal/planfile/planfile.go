// Package planfile reads and writes the plan document dialect: a Markdown
// subset where `## Title` lines are headings, `- [ ]`/`- [x]` lines are
// todos (one leading tab per indent level, clamped to 0..1), and a fenced
// block tagged `plane` directly after an item carries that item's note.
//
// A heading literally titled "Archive" splits the document: everything
// after it belongs to the archive list. In memory the archive is a separate
// list; the writer folds it back under a trailing `## Archive` heading.
//
// The writer is canonical: for a document already in canonical form,
// Format(Parse(text)) reproduces the text byte for byte. The reader is
// lenient and never fails; lines outside the dialect are skipped.
package planfile

import (
	"strings"

	"plane-cli/internal/model"
	"plane-cli/internal/outline"
)

const (
	headingPrefix = "## "
	fenceOpen     = "```plane"
	fenceClose    = "```"
	notePrefix    = "    " // fixed 4-space prefix per note line
)

// Parse reads a plan document. It never fails: unknown lines are skipped,
// indents are clamped, orphaned children are promoted and archive items are
// forced checked.
func Parse(src string) (items, archived []model.Item) {
	lines := strings.Split(src, "\n")
	inArchive := false
	cur := &items

	appendNote := func(note string) {
		if len(*cur) == 0 {
			return // note with no preceding item: dropped
		}
		last := &(*cur)[len(*cur)-1]
		if last.Note != "" {
			last.Note += "\n"
		}
		last.Note += note
	}

	for li := 0; li < len(lines); li++ {
		line := lines[li]
		switch {
		case strings.HasPrefix(line, headingPrefix):
			title := strings.TrimSpace(strings.TrimPrefix(line, headingPrefix))
			if title == model.ArchiveTitle && !inArchive {
				inArchive = true
				cur = &archived
				continue
			}
			if inArchive {
				// The archive holds no headings; a stray one is skipped.
				continue
			}
			*cur = append(*cur, model.NewHeading(title))

		case line == fenceOpen:
			var note []string
			for li++; li < len(lines); li++ {
				if lines[li] == fenceClose {
					break
				}
				note = append(note, strings.TrimPrefix(lines[li], notePrefix))
			}
			appendNote(strings.Join(note, "\n"))

		default:
			if it, ok := parseTodoLine(line); ok {
				*cur = append(*cur, it)
			}
		}
	}

	outline.RepairOrphans(items)
	for i := range archived {
		archived[i].Checked = true
		archived[i].Indent = model.ClampIndent(archived[i].Kind, archived[i].Indent)
	}
	outline.RepairOrphans(archived)
	return items, archived
}

func parseTodoLine(line string) (model.Item, bool) {
	indent := 0
	for strings.HasPrefix(line, "\t") {
		indent++
		line = line[1:]
	}
	indent = model.ClampIndent(model.KindTodo, indent)

	var checked bool
	switch {
	case strings.HasPrefix(line, "- [ ] "):
		checked = false
	case strings.HasPrefix(line, "- [x] "):
		checked = true
	default:
		return model.Item{}, false
	}
	it := model.NewTodo(strings.TrimSuffix(line[len("- [ ] "):], "\r"), indent)
	it.Checked = checked
	return it, true
}

// Format writes the canonical form of the document. A non-empty archive is
// folded under a trailing "## Archive" heading.
func Format(items, archived []model.Item) string {
	var b strings.Builder
	for _, it := range items {
		writeItem(&b, it)
	}
	if len(archived) > 0 {
		b.WriteString(headingPrefix + model.ArchiveTitle + "\n")
		for _, it := range archived {
			writeItem(&b, it)
		}
	}
	return b.String()
}

func writeItem(b *strings.Builder, it model.Item) {
	switch it.Kind {
	case model.KindHeading:
		b.WriteString(headingPrefix + it.Title + "\n")
	default:
		for i := 0; i < model.ClampIndent(it.Kind, it.Indent); i++ {
			b.WriteByte('\t')
		}
		if it.Checked {
			b.WriteString("- [x] ")
		} else {
			b.WriteString("- [ ] ")
		}
		b.WriteString(it.Title + "\n")
	}
	if it.Note != "" {
		b.WriteString(fenceOpen + "\n")
		for _, line := range strings.Split(it.Note, "\n") {
			b.WriteString(notePrefix + line + "\n")
		}
		b.WriteString(fenceClose + "\n")
	}
}
