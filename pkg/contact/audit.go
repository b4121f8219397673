package contact

import (
	"context"
	"fmt"
	"strconv"

	"github.com/contactbook/contactbook/pkg/report"
)

// Issue codes reported by Audit.
const (
	CodeIDMissing   = "ID_MISSING"
	CodeIDDuplicate = "ID_DUPLICATE"
	CodeStoreEmpty  = "STORE_EMPTY"
)

// Audit reads the store and checks that ids are present and unique and that
// every record passes Check. It only returns an error if the store cannot be read.
func Audit(ctx context.Context, store Store) (*report.ValidationResult, error) {
	contacts, err := store.Load(ctx)
	if err != nil {
		return nil, err
	}

	res := report.NewResult()
	if len(contacts) == 0 {
		res.AddWarning(CodeStoreEmpty, "store has no contacts", "")
		return res, nil
	}

	firstSeen := make(map[string]int, len(contacts))
	for i, c := range contacts {
		record := c.ID
		if record == "" {
			record = "#" + strconv.Itoa(i)
		}

		rec := report.NewResult()
		if c.ID == "" {
			rec.AddError(CodeIDMissing, "record has no id", "id")
		} else if first, dup := firstSeen[c.ID]; dup {
			rec.AddError(CodeIDDuplicate, fmt.Sprintf("id already used by record #%d", first), "id")
		} else {
			firstSeen[c.ID] = i
		}

		rec.Merge("", Check(NewContact{Name: c.Name, Email: c.Email, Phone: c.Phone}))
		res.Merge(record, rec)
	}

	return res, nil
}
