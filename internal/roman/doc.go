// Package roman converts integers to Roman numerals and back.
//
// Conversion reduces the input greedily against a fixed table that already
// contains the subtractive pairs (CM, CD, XC, XL, IX, IV), so the largest
// symbol that fits is always the canonical choice. Only values in
// [MinValue, MaxValue] are representable; anything else fails with a
// *RangeError before the table is consulted.
//
// All functions are pure and safe for concurrent use.
package roman
