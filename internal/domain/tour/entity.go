package tour

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTitle = errors.New("title must not be empty")
	ErrInvalidSlug  = errors.New("invalid slug format")
	ErrInvalidPrice = errors.New("price cannot be negative")
)

var slugRegex = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type Slug string

func NewSlug(slug string) (Slug, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if !slugRegex.MatchString(slug) {
		return Slug(""), ErrInvalidSlug
	}
	return Slug(slug), nil
}

func (s Slug) String() string {
	return string(s)
}

// Tour is a purchasable catalog entry. The id is a catalog-wide integer so
// cart line items can reference it compactly.
type Tour struct {
	id          int64
	slug        Slug
	title       string
	description string
	price       decimal.Decimal
	duration    string
	image       string
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTour(slug Slug, title, description string, price decimal.Decimal, duration, image string) (*Tour, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidTitle
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	return &Tour{
		slug:        slug,
		title:       title,
		description: description,
		price:       price,
		duration:    duration,
		image:       image,
		active:      true,
	}, nil
}

func ReconstructTour(
	id int64,
	slug Slug,
	title, description string,
	price decimal.Decimal,
	duration, image string,
	active bool,
	createdAt, updatedAt time.Time,
) *Tour {
	return &Tour{
		id:          id,
		slug:        slug,
		title:       title,
		description: description,
		price:       price,
		duration:    duration,
		image:       image,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (t *Tour) Deactivate() {
	t.active = false
}

func (t *Tour) ID() int64                 { return t.id }
func (t *Tour) Slug() Slug                { return t.slug }
func (t *Tour) Title() string             { return t.title }
func (t *Tour) Description() string       { return t.description }
func (t *Tour) Price() decimal.Decimal    { return t.price }
func (t *Tour) Duration() string          { return t.duration }
func (t *Tour) Image() string             { return t.image }
func (t *Tour) IsActive() bool            { return t.active }
func (t *Tour) CreatedAt() time.Time      { return t.createdAt }
func (t *Tour) UpdatedAt() time.Time      { return t.updatedAt }
