package crt

// SeparateChaining - Collision Resolution Technique where every bucket holds a linked chain of
// colliding elements
const SeparateChaining int = 1

// LinearProbing - Collision Resolution Technique where a collision is resolved by probing the
// next slot (mod table size) until resolution
const LinearProbing int = 2

// QuadraticProbing - Collision Resolution Technique where a collision is resolved by probing
// slots at triangular number offsets from the home slot
const QuadraticProbing int = 3

// DoubleHashing - Collision Resolution Technique where a collision is resolved by probing slots
// at offsets given by a second hash function
const DoubleHashing int = 4
