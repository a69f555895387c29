package version

// AppVersion is the nart release version.
const AppVersion = "0.1.0"
