package product

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	nameMinLength        = 3
	nameMaxLength        = 100
	descriptionMaxLength = 500
)

// ErrProductIsNotConstructed is returned when a Product bypassed its constructors.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an item sold by a restaurant.
type Product struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	description  string
	price        kernel.Money
	category     string
	available    bool
	imageURL     string

	guard guard.ConstructorGuard
}

// Details groups the descriptive fields of a product.
type Details struct {
	Name        string
	Description string
	Price       kernel.Money
	Category    string
	ImageURL    string
}

// Patch carries the fields of a partial update. The owning restaurant
// cannot be patched.
type Patch struct {
	Name        kernel.Optional[string]
	Description kernel.Optional[string]
	Price       kernel.Optional[kernel.Money]
	Category    kernel.Optional[string]
	ImageURL    kernel.Optional[string]
	Available   kernel.Optional[bool]
}

// NewProduct creates an available product of restaurantID.
func NewProduct(id, restaurantID kernel.UUID, d Details) (*Product, error) {
	p := &Product{
		available: true,
		imageURL:  strings.TrimSpace(d.ImageURL),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setRestaurantID(restaurantID),
		p.setName(d.Name),
		p.setDescription(d.Description),
		p.setPrice(d.Price),
		p.setCategory(d.Category),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a product loaded from storage.
func RestoreProduct(id, restaurantID kernel.UUID, d Details, available bool) (*Product, error) {
	p, err := NewProduct(id, restaurantID, d)
	if err != nil {
		return nil, err
	}
	p.available = available
	return p, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() kernel.UUID           { return p.id }
func (p *Product) RestaurantID() kernel.UUID { return p.restaurantID }
func (p *Product) Name() string              { return p.name }
func (p *Product) Description() string       { return p.description }
func (p *Product) Price() kernel.Money       { return p.price }
func (p *Product) Category() string          { return p.category }
func (p *Product) ImageURL() string          { return p.imageURL }
func (p *Product) IsAvailable() bool         { return p.available }

// Apply overwrites the fields present in patch. Nothing changes when any of
// them is invalid.
func (p *Product) Apply(patch Patch) error {
	next := *p

	var result []error
	if v, ok := patch.Name.Get(); ok {
		result = append(result, next.setName(v))
	}
	if v, ok := patch.Description.Get(); ok {
		result = append(result, next.setDescription(v))
	}
	if v, ok := patch.Price.Get(); ok {
		result = append(result, next.setPrice(v))
	}
	if v, ok := patch.Category.Get(); ok {
		result = append(result, next.setCategory(v))
	}
	if err := errors.Join(result...); err != nil {
		return err
	}
	if v, ok := patch.ImageURL.Get(); ok {
		next.imageURL = strings.TrimSpace(v)
	}
	if v, ok := patch.Available.Get(); ok {
		next.available = v
	}

	*p = next
	return nil
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant id", err)
	}
	p.restaurantID = id
	return nil
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n < nameMinLength || n > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, nameMinLength, nameMaxLength)
	}
	p.name = name
	return nil
}

func (p *Product) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if n := utf8.RuneCountInString(description); n > descriptionMaxLength {
		return errs.NewValueIsOutOfRangeError("description length", n, 0, descriptionMaxLength)
	}
	p.description = description
	return nil
}

func (p *Product) setPrice(price kernel.Money) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is not greater than 0", price))
	}
	p.price = price
	return nil
}

func (p *Product) setCategory(category string) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return errs.NewValueIsRequiredError("category")
	}
	p.category = category
	return nil
}
