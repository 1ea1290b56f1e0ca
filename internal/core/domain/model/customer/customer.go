package customer

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

const (
	nameMinLength  = 3
	nameMaxLength  = 100
	phoneMinLength = 10
	phoneMaxLength = 15
)

// ErrCustomerIsNotConstructed is returned when a Customer bypassed its constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer is a registered buyer. The registration timestamp never changes
// after creation.
type Customer struct {
	id           kernel.UUID
	name         string
	email        string
	phone        string
	address      string
	active       bool
	registeredAt time.Time

	guard guard.ConstructorGuard
}

// Patch carries the fields of a partial update. Only present fields are applied.
type Patch struct {
	Name    kernel.Optional[string]
	Email   kernel.Optional[string]
	Phone   kernel.Optional[string]
	Address kernel.Optional[string]
	Active  kernel.Optional[bool]
}

// NewCustomer registers an active customer.
func NewCustomer(id kernel.UUID, name, email, phone, address string, registeredAt time.Time) (*Customer, error) {
	c := &Customer{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setRegisteredAt(registeredAt),
	); err != nil {
		return nil, err
	}
	c.address = strings.TrimSpace(address)

	return c, nil
}

// RestoreCustomer rebuilds a customer loaded from storage.
func RestoreCustomer(
	id kernel.UUID,
	name, email, phone, address string,
	active bool,
	registeredAt time.Time,
) (*Customer, error) {
	c := &Customer{
		address: address,
		active:  active,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
		c.setPhone(phone),
		c.setRegisteredAt(registeredAt),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// NormalizeEmail returns the form in which emails are stored and compared.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID         { return c.id }
func (c *Customer) Name() string            { return c.name }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) Phone() string           { return c.phone }
func (c *Customer) Address() string         { return c.address }
func (c *Customer) IsActive() bool          { return c.active }
func (c *Customer) RegisteredAt() time.Time { return c.registeredAt }

// Apply overwrites the fields present in p. Nothing changes when any of
// them is invalid.
func (c *Customer) Apply(p Patch) error {
	next := *c

	var result []error
	if v, ok := p.Name.Get(); ok {
		result = append(result, next.setName(v))
	}
	if v, ok := p.Email.Get(); ok {
		result = append(result, next.setEmail(v))
	}
	if v, ok := p.Phone.Get(); ok {
		result = append(result, next.setPhone(v))
	}
	if v, ok := p.Address.Get(); ok {
		next.address = strings.TrimSpace(v)
	}
	if v, ok := p.Active.Get(); ok {
		next.active = v
	}
	if err := errors.Join(result...); err != nil {
		return err
	}

	*c = next
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	if n := utf8.RuneCountInString(name); n < nameMinLength || n > nameMaxLength {
		return errs.NewValueIsOutOfRangeError("name length", n, nameMinLength, nameMaxLength)
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", err)
	}
	c.email = email
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if n := len(phone); n < phoneMinLength || n > phoneMaxLength {
		return errs.NewValueIsOutOfRangeError("phone length", n, phoneMinLength, phoneMaxLength)
	}
	c.phone = phone
	return nil
}

func (c *Customer) setRegisteredAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("registered at")
	}
	c.registeredAt = t
	return nil
}
