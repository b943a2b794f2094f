package platform

// Package platform contains OS integration glue: the default data file
// location, directory creation, and opening the system file manager.
