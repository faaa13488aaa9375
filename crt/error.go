package crt

// NoElementFound - Custom error to inform that no element was found
type NoElementFound struct {
	msg string
}

// Error - Used to notify that no element was found
func (E NoElementFound) Error() string {
	if E.msg == "" {
		return "no element found"
	}
	return E.msg
}

// DuplicateElement - Custom error to inform that an equal element is already present in the table
type DuplicateElement struct {
	msg string
}

// Error - Used to notify that an equal element is already present
func (E DuplicateElement) Error() string {
	if E.msg == "" {
		return "duplicate element"
	}
	return E.msg
}

// TableFull - Custom error to inform that the table is full and can't take more elements
type TableFull struct {
	msg string
}

// Error - Used to notify that the table is full
func (E TableFull) Error() string {
	if E.msg == "" {
		return "table full"
	}
	return E.msg
}

// ProbingAlgorithm - Custom error to inform that something went wrong concerning a probing algorithm
type ProbingAlgorithm struct {
	msg string
}

// Error - Used to notify that the probing algorithm was exhausted
func (P ProbingAlgorithm) Error() string {
	if P.msg == "" {
		return "probing algorithm exhausted"
	}
	return P.msg
}

// UnknownCollisionResolutionTechnique - Custom error to inform that no implementation exists for
// the requested collision resolution technique
type UnknownCollisionResolutionTechnique struct {
	msg string
}

// Error - Used to notify that the requested collision resolution technique is unknown
func (E UnknownCollisionResolutionTechnique) Error() string {
	if E.msg == "" {
		return "unknown collision resolution technique"
	}
	return E.msg
}
