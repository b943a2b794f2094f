package model

// Package model defines domain data structures used across the app: tasks,
// services, status/priority/filter enums, and the bounded Text type backing
// every fixed-capacity field that crosses the host boundary. Structures are
// plain values with explicit state transitions; nothing in this package
// touches the wire format itself.
