package internal

// Version is the fenglish release version
const Version = "0.3.0"
