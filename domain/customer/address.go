package customer

import (
	"encoding/json"
	"fmt"
)

// Address is a value object. Fields are unexported so a copy can never be
// changed after construction.
type Address struct {
	street string
	number int
	zip    string
	city   string
}

func NewAddress(street string, number int, zip string, city string) Address {
	return Address{
		street: street,
		number: number,
		zip:    zip,
		city:   city,
	}
}

func (a Address) Street() string { return a.street }
func (a Address) Number() int    { return a.number }
func (a Address) Zip() string    { return a.zip }
func (a Address) City() string   { return a.city }

func (a Address) Equal(other Address) bool {
	return a == other
}

// String renders "street, number, city - zip".
func (a Address) String() string {
	return fmt.Sprintf("%s, %d, %s - %s", a.street, a.number, a.city, a.zip)
}

type addressJSON struct {
	Street string `json:"street"`
	Number int    `json:"number"`
	Zip    string `json:"zip"`
	City   string `json:"city"`
}

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(addressJSON{
		Street: a.street,
		Number: a.number,
		Zip:    a.zip,
		City:   a.city,
	})
}

func (a *Address) UnmarshalJSON(data []byte) error {
	var v addressJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}

	*a = NewAddress(v.Street, v.Number, v.Zip, v.City)

	return nil
}
