package types

import (
	"encoding/json"
	"fmt"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// Scalar is an identifier the remote may send either as a JSON string or as a
// JSON number. It is always held in its textual form and marshals as a string.
type Scalar string

// UnmarshalJSON accepts strings, numbers and null.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = Scalar(v)
		return nil
	}
	if string(b) == "null" {
		*s = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("scalar: %w", err)
	}
	*s = Scalar(n.String())
	return nil
}

func (s Scalar) String() string { return string(s) }

// Shop is a seller storefront
type Shop struct {
	ID           Scalar `json:"id"`
	Title        string `json:"title"`
	SalesChannel string `json:"sales_channel"`
}

// Product is a sellable item template owned by a shop
type Product struct {
	ID          Scalar           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Options     []ProductOption  `json:"options"`
	Variants    []ProductVariant `json:"variants"`
	Images      []ProductImage   `json:"images"`
}

// ProductOption names a printable option such as "Colors" or "Sizes".
type ProductOption struct {
	Name string `json:"name"`
}

// ProductVariant identifies one variant of a product.
type ProductVariant struct {
	ID Scalar `json:"id"`
}

// ProductImage is a mockup image of a product.
type ProductImage struct {
	Src string `json:"src"`
}
