// Package layout resolves where registers live on the bus and how wide the
// bus is.
//
// Resolve walks the registers of one interface in declaration order with a
// byte cursor starting at 0. Registers with an explicit address are placed
// verbatim; automatic registers go to the cursor rounded up to the bus word
// size. After every register the cursor moves to its end, so an automatic
// register always follows the register declared before it:
//
//	ctrl    0x00            -> 0x00..0x04
//	status  auto            -> 0x04..0x08
//	fifo    0x40:stride:4   -> 0x40..0x50 (4 words)
//	irq     auto            -> 0x50..0x54
//
// The data width defaults to the widest register and the address width to
// the fewest bits that reach the last byte.
package layout
