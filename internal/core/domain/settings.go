package domain

// Default provider settings.
const (
	DefaultProviderName     = "OneBoxDirectoryProvider"
	DefaultDirectoryName    = "ACME Employee Directory"
	DefaultImagePath        = "images/acme.JPG"
	DefaultDirectoryPage    = "acme_directory.html"
	DefaultLanguage         = "en"
	DefaultLDAPAttribute    = "UID"
	DefaultListenAddr       = ":8080"
	DefaultDirectoryBackend = "memory"
)

// Directory backends.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// ProviderSettings configures the directory provider and its adapters.
type ProviderSettings struct {
	// ProviderName and DirectoryName form the provider label
	// "<ProviderName>: <DirectoryName>".
	ProviderName  string
	DirectoryName string

	// BaseURL overrides the base URL derived from the request.
	BaseURL       string
	ImagePath     string
	DirectoryPage string

	AuthTypes  AuthCapability
	MinVersion APIVersion
	Language   string

	// EscapeXML escapes text and attribute values in the rendered document.
	// Off by default for compatibility with existing OneBox clients.
	EscapeXML bool

	LDAPAttribute string
	SSOHashKey    string
	SSOBlockKey   string

	DirectoryBackend string
	DataDir          string
	FixturePath      string

	ListenAddr string
	RateLimit  float64
	RateBurst  int
}

// DefaultProviderSettings returns the settings used when nothing is configured.
func DefaultProviderSettings() ProviderSettings {
	return ProviderSettings{
		ProviderName:     DefaultProviderName,
		DirectoryName:    DefaultDirectoryName,
		ImagePath:        DefaultImagePath,
		DirectoryPage:    DefaultDirectoryPage,
		AuthTypes:        AuthCapAll,
		MinVersion:       APIVersion{Major: 1, Minor: 0},
		Language:         DefaultLanguage,
		LDAPAttribute:    DefaultLDAPAttribute,
		DirectoryBackend: DefaultDirectoryBackend,
		ListenAddr:       DefaultListenAddr,
	}
}

// ProviderLabel returns the provider element text.
func (s ProviderSettings) ProviderLabel() string {
	return s.ProviderName + ": " + s.DirectoryName
}
