package unitview

// Version is the current version of the go-unitview library
const Version = "0.1.0"
