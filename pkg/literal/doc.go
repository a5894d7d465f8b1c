// Package literal parses and formats the numeric text that appears in a
// register description: radix-tagged values, register addresses and field
// bit positions.
//
// # Values
//
// A value is an unsigned integer with an optional, case-insensitive radix
// prefix:
//
//	38      decimal
//	0d38    decimal, written back as "38"
//	0x1A    hexadecimal, written back as "0x1a"
//	0b101   binary
//
// # Addresses
//
// An address is one of
//
//	auto                       placed by the layout resolver
//	0x40                       fixed
//	0x40:stride:10             ten instances, one register width apart
//	0x40:stride:10:0x8         ten instances, 8 bytes apart
//
// # Field positions
//
//	3       single bit
//	7:4     bits 7 down to 4
//
// Addresses and positions are closed sum types; consumers switch over the
// concrete types (Auto, Fixed, Strided and Bit, Range).
package literal
