package teller

import (
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode"
)

// Customer is one bank customer and the ordered list of account ids it
// owns. The customer row stores the ownership side of the relation; an
// account record does not know its owner.
type Customer struct {
	ID         int
	Name       string // letters and spaces only
	Age        int
	Password   string // opaque; comma and quote characters forbidden
	AccountIDs []int
}

// SanitizeName strips every rune that is not a letter or a space. The
// customer file is comma-delimited, so names must never carry structure.
func SanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// ValidPassword reports whether the password is storable: commas would
// break the record grammar and quotes are rejected like the original
// files did.
func ValidPassword(password string) bool {
	return password != "" && !strings.ContainsAny(password, `,'"`)
}

// SetName assigns the sanitized name.
func (c *Customer) SetName(name string) {
	c.Name = SanitizeName(name)
}

// AddAccount appends an account id to the ownership list. The caller
// persists the customer row afterwards.
func (c *Customer) AddAccount(id int) {
	c.AccountIDs = append(c.AccountIDs, id)
}

// RemoveAccount detaches an account id. Unknown ids are ignored.
func (c *Customer) RemoveAccount(id int) {
	c.AccountIDs = slices.DeleteFunc(c.AccountIDs, func(v int) bool { return v == id })
}

// Owns reports whether the customer owns the account id.
func (c *Customer) Owns(id int) bool {
	return slices.Contains(c.AccountIDs, id)
}

// CanDelete reports whether the customer may be deleted: every owned
// account must have a balance of exactly zero. A negative balance blocks
// deletion just like a positive one.
func (c *Customer) CanDelete(accounts map[int]*Account) bool {
	for _, id := range c.AccountIDs {
		acc, ok := accounts[id]
		if !ok || !acc.Balance.IsZero() {
			return false
		}
	}
	return true
}

// TransactionBlock reports whether it is safe to proceed with a
// multi-account flow: true only when no owned account is currently
// inside its transfer window.
func (c *Customer) TransactionBlock(accounts map[int]*Account, now time.Time) bool {
	for _, id := range c.AccountIDs {
		if acc, ok := accounts[id]; ok && acc.LimitReached(now) {
			return false
		}
	}
	return true
}

// Equal reports semantic equality of two customers.
func (c *Customer) Equal(o *Customer) bool {
	return c.ID == o.ID &&
		c.Name == o.Name &&
		c.Age == o.Age &&
		c.Password == o.Password &&
		slices.Equal(c.AccountIDs, o.AccountIDs)
}

// String renders the customer for console listings.
func (c *Customer) String() string {
	return fmt.Sprintf("%d\t%s", c.ID, c.Name)
}
