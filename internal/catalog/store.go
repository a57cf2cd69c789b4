package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"listpad/internal/models"

	"github.com/rs/zerolog"
)

// Store owns the in-memory catalog and its persistence. The catalog file
// is read once during Load and rewritten in full during Save; no file
// handle is held in between, so concurrent processes race with
// last-writer-wins semantics.
type Store struct {
	path    string
	catalog map[string]models.Listing
	logger  *zerolog.Logger
}

func NewStore(path string, logger *zerolog.Logger) *Store {
	return &Store{
		path:    path,
		catalog: make(map[string]models.Listing),
		logger:  logger,
	}
}

// Load reads the catalog file into memory. A missing file starts an empty
// catalog; an unreadable or unparseable one fails with
// ErrStorageUnavailable.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Info().Str("path", s.path).Msg("catalog file not found, starting empty")
			s.catalog = make(map[string]models.Listing)
			return nil
		}
		return fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, s.path, err)
	}

	var catalog map[string]models.Listing
	if err := json.Unmarshal(data, &catalog); err != nil {
		return fmt.Errorf("%w: parse %s: %v", ErrStorageUnavailable, s.path, err)
	}
	if catalog == nil {
		catalog = make(map[string]models.Listing)
	}

	for asin, listing := range catalog {
		catalog[asin] = s.normalize(asin, listing)
	}

	s.catalog = catalog
	s.logger.Debug().Int("listings", len(catalog)).Str("path", s.path).Msg("catalog loaded")
	return nil
}

// normalize repairs a stored entry: the map key wins over the embedded
// asin field, missing fields keep their zero values, negative numbers
// clamp to zero.
func (s *Store) normalize(asin string, listing models.Listing) models.Listing {
	if listing.ASIN != asin {
		s.logger.Warn().Str("key", asin).Str("asin", listing.ASIN).Msg("entry asin does not match its key, using the key")
		listing.ASIN = asin
	}
	if listing.Price < 0 {
		s.logger.Warn().Str("asin", asin).Float64("price", listing.Price).Msg("negative price in catalog file, clamping to 0")
		listing.Price = 0
	}
	if listing.Quantity < 0 {
		s.logger.Warn().Str("asin", asin).Int64("quantity", listing.Quantity).Msg("negative quantity in catalog file, clamping to 0")
		listing.Quantity = 0
	}
	return listing
}

// Find looks up a listing by exact, case-sensitive ASIN. No side effects.
func (s *Store) Find(asin string) (models.Listing, error) {
	listing, ok := s.catalog[asin]
	if !ok {
		return models.Listing{}, fmt.Errorf("%w: %s", ErrNotFound, asin)
	}
	return listing, nil
}

// Create inserts a default-valued listing for asin and returns it.
func (s *Store) Create(asin string) (models.Listing, error) {
	if _, ok := s.catalog[asin]; ok {
		return models.Listing{}, fmt.Errorf("%w: %s", ErrDuplicateKey, asin)
	}
	listing := models.NewListing(asin)
	s.catalog[asin] = listing
	return listing, nil
}

// Update sets one editable field of an existing listing, coercing the raw
// value to the field's type. A failed coercion leaves the listing
// untouched.
func (s *Store) Update(asin, field, value string) error {
	listing, ok := s.catalog[asin]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, asin)
	}

	switch field {
	case models.FieldTitle:
		listing.Title = value
	case models.FieldDescription:
		listing.Description = value
	case models.FieldPrice:
		price, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if err != nil {
			return fmt.Errorf("%w: price %q is not a number", ErrInvalidValue, value)
		}
		// ParseFloat accepts NaN and Inf, which JSON cannot encode
		if math.IsNaN(price) || math.IsInf(price, 0) {
			return fmt.Errorf("%w: price %q is not a finite number", ErrInvalidValue, value)
		}
		if price < 0 {
			return fmt.Errorf("%w: price must not be negative", ErrInvalidValue)
		}
		listing.Price = price
	case models.FieldQuantity:
		quantity, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: quantity %q is not an integer", ErrInvalidValue, value)
		}
		if quantity < 0 {
			return fmt.Errorf("%w: quantity must not be negative", ErrInvalidValue)
		}
		listing.Quantity = quantity
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	s.catalog[asin] = listing
	return nil
}

// Save rewrites the catalog file in full. The data goes to a temp file in
// the same directory first, then replaces the old file by rename, so a
// failed write cannot truncate the previous contents.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create directory %s: %v", ErrStorageUnavailable, dir, err)
	}

	data, err := json.MarshalIndent(s.catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode catalog: %v", ErrStorageUnavailable, err)
	}

	tmp, err := os.CreateTemp(dir, ".listings-*.json")
	if err != nil {
		return fmt.Errorf("%w: create temp file in %s: %v", ErrStorageUnavailable, dir, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: close %s: %v", ErrStorageUnavailable, tmpPath, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("%w: replace %s: %v", ErrStorageUnavailable, s.path, err)
	}

	s.logger.Info().Int("listings", len(s.catalog)).Str("path", s.path).Msg("catalog saved")
	return nil
}

// Listings returns a snapshot of the catalog sorted by ASIN.
func (s *Store) Listings() []models.Listing {
	listings := make([]models.Listing, 0, len(s.catalog))
	for _, listing := range s.catalog {
		listings = append(listings, listing)
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].ASIN < listings[j].ASIN })
	return listings
}

func (s *Store) Len() int {
	return len(s.catalog)
}

func (s *Store) Path() string {
	return s.path
}
