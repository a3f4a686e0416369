package network

// Environment selects the API origin requests are built against
type Environment struct {
	Name       string
	BaseURL    string
	ForceHTTPS bool // Rewrite the scheme of every built URL to https
}

// Production targets the hosted API and always uses https
func Production(baseURL string) Environment {
	return Environment{Name: "production", BaseURL: baseURL, ForceHTTPS: true}
}

// Development keeps the scheme of baseURL so a plain-HTTP local server works
func Development(baseURL string) Environment {
	return Environment{Name: "development", BaseURL: baseURL}
}
