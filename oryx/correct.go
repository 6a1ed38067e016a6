package oryx

import (
	"regexp"

	"github.com/fwojciec/unveil"
)

// attachmentPattern matches models listed together with what they carry or
// tow, "BM-21 with 9M22 rockets" for example.
var attachmentPattern = regexp.MustCompile(`^(.+?) with (.*)$`)

// SplitAttachment returns a stage moving an attachment clause out of the
// model name into the attachment field.
func SplitAttachment() unveil.Stage[unveil.Case] {
	return unveil.Map(splitAttachment)
}

func splitAttachment(c unveil.Case) unveil.Case {
	m := attachmentPattern.FindStringSubmatch(c.Model)
	if m == nil {
		return c
	}
	attachment := m[2]
	c.Model = m[1]
	c.Attachment = &attachment
	return c
}

// AutoID returns a stage replacing each case identifier with the position
// of the case among the cases of its model, counting from 1. The article
// numbers entries per list item, so a model listed more than once would
// otherwise repeat identifiers.
func AutoID() unveil.Stage[unveil.Case] {
	return unveil.Renumber(
		func(c unveil.Case) string { return c.Model },
		func(c unveil.Case, id int) unveil.Case {
			c.ModelCaseID = id
			return c
		},
	)
}
