package restaurant

import (
	"errors"
	"math"
	"strings"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	nameMinLength = 3
	nameMaxLength = 100

	MinRating = 0.0
	MaxRating = 5.0
)

// ErrRestaurantIsNotConstructed is returned when a Restaurant bypassed its constructors.
var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant is a seller in the marketplace. Rating is unset until one is
// given and always lies within [MinRating, MaxRating].
type Restaurant struct {
	id           kernel.UUID
	name         string
	category     string
	address      string
	phone        string
	rating       *float64
	active       bool
	openingHours string

	guard guard.ConstructorGuard
}

// Details groups the descriptive fields used at creation time.
type Details struct {
	Name         string
	Category     string
	Address      string
	Phone        string
	OpeningHours string
	Rating       kernel.Optional[float64]
}

// Patch carries the fields of a partial update. Only present fields are applied.
type Patch struct {
	Name         kernel.Optional[string]
	Category     kernel.Optional[string]
	Address      kernel.Optional[string]
	Phone        kernel.Optional[string]
	OpeningHours kernel.Optional[string]
	Rating       kernel.Optional[float64]
	Active       kernel.Optional[bool]
}

// NewRestaurant creates an active restaurant.
func NewRestaurant(id kernel.UUID, d Details) (*Restaurant, error) {
	r := &Restaurant{
		phone:        strings.TrimSpace(d.Phone),
		openingHours: strings.TrimSpace(d.OpeningHours),
		active:       true,
		guard:        guard.NewConstructorGuard(),
	}

	result := []error{
		r.setID(id),
		r.setName(d.Name),
		r.setCategory(d.Category),
		r.setAddress(d.Address),
	}
	if v, ok := d.Rating.Get(); ok {
		result = append(result, r.setRating(v))
	}
	if err := errors.Join(result...); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRestaurant rebuilds a restaurant loaded from storage.
func RestoreRestaurant(id kernel.UUID, d Details, active bool) (*Restaurant, error) {
	r, err := NewRestaurant(id, d)
	if err != nil {
		return nil, err
	}
	r.active = active
	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID      { return r.id }
func (r *Restaurant) Name() string         { return r.name }
func (r *Restaurant) Category() string     { return r.category }
func (r *Restaurant) Address() string      { return r.address }
func (r *Restaurant) Phone() string        { return r.phone }
func (r *Restaurant) OpeningHours() string { return r.openingHours }
func (r *Restaurant) IsActive() bool       { return r.active }

// Rating returns the rating and whether one is set.
func (r *Restaurant) Rating() (float64, bool) {
	if r.rating == nil {
		return 0, false
	}
	return *r.rating, true
}

// Apply overwrites the fields present in p. Nothing changes when any of
// them is invalid.
func (r *Restaurant) Apply(p Patch) error {
	next := *r

	var result []error
	if v, ok := p.Name.Get(); ok {
		result = append(result, next.setName(v))
	}
	if v, ok := p.Category.Get(); ok {
		result = append(result, next.setCategory(v))
	}
	if v, ok := p.Address.Get(); ok {
		result = append(result, next.setAddress(v))
	}
	if v, ok := p.Rating.Get(); ok {
		result = append(result, next.setRating(v))
	}
	if err := errors.Join(result...); err != nil {
		return err
	}
	if v, ok := p.Phone.Get(); ok {
		next.phone = strings.TrimSpace(v)
	}
	if v, ok := p.OpeningHours.Get(); ok {
		next.openingHours = strings.TrimSpace(v)
	}
	if v, ok := p.Active.Get(); ok {
		next.active = v
	}

	*r = next
	return nil
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n < nameMinLength || n > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, nameMinLength, nameMaxLength)
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	r.category = category
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}

func (r *Restaurant) setRating(rating float64) error {
	if math.IsNaN(rating) || rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	r.rating = &rating
	return nil
}
