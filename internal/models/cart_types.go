package models

import "strconv"

// CartSlots is the fixed size of every user's cart: item ids 0..299.
// Signup seeds all slots to zero and mutations are range-checked against it.
const CartSlots = 300

// CartData maps a stringified item id to a non-negative quantity.
// String keys keep the JSON shape identical to the original cartData object.
type CartData map[string]int

// NewCartData returns a cart with every slot in the valid range set to zero.
func NewCartData() CartData {
	cart := make(CartData, CartSlots)
	for i := 0; i < CartSlots; i++ {
		cart[strconv.Itoa(i)] = 0
	}
	return cart
}

// ValidItemID reports whether an item id falls inside the cart's key range.
func ValidItemID(itemID int) bool {
	return itemID >= 0 && itemID < CartSlots
}

// Increment adds one to the slot for itemID.
func (c CartData) Increment(itemID int) {
	c[strconv.Itoa(itemID)]++
}

// Decrement subtracts one from the slot for itemID, flooring at zero.
func (c CartData) Decrement(itemID int) {
	key := strconv.Itoa(itemID)
	if c[key] > 0 {
		c[key]--
	}
}

// Quantity returns the current count for itemID.
func (c CartData) Quantity(itemID int) int {
	return c[strconv.Itoa(itemID)]
}
