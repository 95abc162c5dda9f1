package booking

// Contact carries who the booking is for. Guest bookings must provide both
// name and phone; authenticated callers may leave them empty.
type Contact struct {
	Name  string
	Phone Phone
}

func (c Contact) NamePtr() *string {
	if c.Name == "" {
		return nil
	}
	v := c.Name
	return &v
}

func (c Contact) PhonePtr() *string {
	if c.Phone.IsZero() {
		return nil
	}
	v := c.Phone.String()
	return &v
}

// ValidateContact validates name and phone into v. Both are mandatory for
// guests; for authenticated users they are checked only when supplied.
func ValidateContact(v *Validator, actor Actor, name, phone string) Contact {
	var c Contact
	if actor.IsGuest() || name != "" {
		if n, err := ValidateGuestName(name); v.Check("guest_name", err) {
			c.Name = n
		}
	}
	if actor.IsGuest() || phone != "" {
		if p, err := NewPhone(phone); v.Check("guest_phone", err) {
			c.Phone = p
		}
	}
	return c
}
