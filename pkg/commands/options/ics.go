package options

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"tableflip.dev/remcal/pkg/reminder"
)

// ImportOptions reads reminders from an iCalendar file.
type ImportOptions struct {
	ICS string
}

func AddImportArgs(cmd *cobra.Command, o *ImportOptions) {
	cmd.Flags().StringVar(&o.ICS, "ics", "",
		"Read reminders from an iCalendar (.ics) file. Nothing is written back.")
}

// Book returns a book seeded from --ics, or an empty book when unset.
func (o *ImportOptions) Book(color string) (*reminder.Book, error) {
	book := reminder.NewBook()
	if o.ICS == "" {
		return book, nil
	}
	path, err := homedir.Expand(o.ICS)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ics: %w", err)
	}
	defer f.Close()

	recs, err := reminder.ReadICS(f, time.Local, color)
	if err != nil {
		return nil, err
	}
	for _, r := range recs {
		book.Put(r)
	}
	return book, nil
}
