package core

// Entity is a unique identifier for a simulation entity
// Zero is never a valid entity and doubles as the "none" sentinel
type Entity uint64
