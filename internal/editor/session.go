package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"listpad/internal/catalog"
	"listpad/internal/models"

	"github.com/rs/zerolog"
)

const doneCommand = "done"

// ErrInputClosed reports that input ended before the user finished the
// session. Nothing is saved in that case.
var ErrInputClosed = errors.New("input closed before session finished")

// Session drives one interactive edit: prompt for an ASIN, fetch or
// create the listing, edit fields until "done", then save the catalog.
// Input and output are injected so tests can script a whole session.
type Session struct {
	store  *catalog.Store
	in     *bufio.Scanner
	out    io.Writer
	logger *zerolog.Logger
}

func New(store *catalog.Store, in io.Reader, out io.Writer, logger *zerolog.Logger) *Session {
	return &Session{
		store:  store,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run executes the full prompt loop. Store errors are rendered as user
// messages; only a storage failure or closed input reaches the caller.
func (s *Session) Run() error {
	asin, err := s.promptASIN()
	if err != nil {
		return err
	}

	listing, err := s.store.Find(asin)
	if errors.Is(err, catalog.ErrNotFound) {
		s.printf("No listing found for %s, creating a new one.\n", asin)
		listing, err = s.store.Create(asin)
	}
	if err != nil {
		s.printf("%s\n", errorMessage(err))
		return err
	}

	if err := s.editLoop(listing.ASIN); err != nil {
		return err
	}

	if err := s.store.Save(); err != nil {
		s.logger.Error().Err(err).Msg("saving catalog failed")
		s.printf("%s\n", errorMessage(err))
		return err
	}
	s.printf("Saved %d listing(s) to %s.\n", s.store.Len(), s.store.Path())
	return nil
}

// promptASIN asks for an ASIN until a non-blank one is entered.
func (s *Session) promptASIN() (string, error) {
	for {
		s.printf("ASIN: ")
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		if asin := strings.TrimSpace(line); asin != "" {
			return asin, nil
		}
		s.printf("ASIN must not be empty.\n")
	}
}

func (s *Session) editLoop(asin string) error {
	for {
		listing, err := s.store.Find(asin)
		if err != nil {
			return err
		}
		s.printListing(listing)

		s.printf("Field to edit (%s) or %q to save and exit: ",
			strings.Join(models.EditableFields(), ", "), doneCommand)
		line, err := s.readLine()
		if err != nil {
			return err
		}

		field := strings.ToLower(strings.TrimSpace(line))
		switch {
		case field == doneCommand:
			return nil
		case field == "":
			continue
		case !models.IsEditableField(field):
			s.printf("%s\n", errorMessage(catalog.ErrUnknownField))
			continue
		}

		if err := s.editField(asin, field); err != nil {
			return err
		}
	}
}

// editField prompts for a value until the store accepts it. An invalid
// value re-prompts for the same field; edits already applied are kept.
func (s *Session) editField(asin, field string) error {
	for {
		s.printf("New value for %s: ", field)
		value, err := s.readLine()
		if err != nil {
			return err
		}

		err = s.store.Update(asin, field, value)
		if err == nil {
			return nil
		}
		if !errors.Is(err, catalog.ErrInvalidValue) {
			return err
		}
		s.printf("%s\n", errorMessage(err))
	}
}

func (s *Session) printListing(listing models.Listing) {
	s.printf("\n%s\n", listing.ASIN)
	s.printf("  title:       %s\n", listing.Title)
	s.printf("  price:       %.2f\n", listing.Price)
	s.printf("  description: %s\n", listing.Description)
	s.printf("  quantity:    %d\n", listing.Quantity)
}

// readLine returns the next input line, ErrInputClosed on end of input,
// or the underlying read error (e.g. an over-long line) wrapped.
func (s *Session) readLine() (string, error) {
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", ErrInputClosed
	}
	return s.in.Text(), nil
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
