package sample

// Package sample reads YAML data files into Documents and pushes them
// through the boundary's input buffers. A built-in document covers first
// runs and unreadable files so the UI never starts on an empty screen.
