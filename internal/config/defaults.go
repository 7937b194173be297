package config

// Default value constants to avoid magic numbers and strings.
const (
	DefaultFileName = "assemble.yaml"

	DefaultBaseRoute = "dashboard"

	DefaultRootNamespace       = "App"
	DefaultControllerNamespace = "App/Http/Controllers"
	DefaultRequestNamespace    = "App/Http/Requests"
	DefaultModelNamespace      = "App/Models"
	DefaultResourceNamespace   = "App/Http/Resources"
	DefaultPolicyNamespace     = "App/Policies"
	DefaultFactoryNamespace    = "Database/Factories"
	DefaultSeederNamespace     = "Database/Seeders"

	DefaultControllersPath = "app/Http/Controllers"
	DefaultRequestsPath    = "app/Http/Requests"
	DefaultModelsPath      = "app/Models"
	DefaultResourcesPath   = "app/Http/Resources"
	DefaultPoliciesPath    = "app/Policies"
	DefaultFactoriesPath   = "database/factories"
	DefaultSeedersPath     = "database/seeders"
	DefaultMigrationsPath  = "database/migrations"
	DefaultPagesPath       = "resources/js/Pages"
	DefaultModalsPath      = "resources/js/Modals"
	DefaultRoutesFile      = "routes/web.php"
	DefaultStubsPath       = "stubs"

	DefaultExtension = "vue"

	DefaultLogLevel = "info"
)

// NewDefaultConfig returns a Config with every section populated with defaults.
func NewDefaultConfig() *Config {
	return &Config{
		BaseRoute:  DefaultBaseRoute,
		Namespaces: NewDefaultNamespacesConfig(),
		Paths:      NewDefaultPathsConfig(),
		Frontend:   FrontendConfig{Extension: DefaultExtension},
		System:     NewDefaultSystemConfig(),
	}
}

// NewDefaultNamespacesConfig returns the Laravel namespace layout.
func NewDefaultNamespacesConfig() NamespacesConfig {
	return NamespacesConfig{
		Root:        DefaultRootNamespace,
		Controllers: DefaultControllerNamespace,
		Requests:    DefaultRequestNamespace,
		Models:      DefaultModelNamespace,
		Resources:   DefaultResourceNamespace,
		Policies:    DefaultPolicyNamespace,
		Factories:   DefaultFactoryNamespace,
		Seeders:     DefaultSeederNamespace,
	}
}

// NewDefaultPathsConfig returns the Laravel directory layout.
func NewDefaultPathsConfig() PathsConfig {
	return PathsConfig{
		Controllers: DefaultControllersPath,
		Requests:    DefaultRequestsPath,
		Models:      DefaultModelsPath,
		Resources:   DefaultResourcesPath,
		Policies:    DefaultPoliciesPath,
		Factories:   DefaultFactoriesPath,
		Seeders:     DefaultSeedersPath,
		Migrations:  DefaultMigrationsPath,
		Pages:       DefaultPagesPath,
		Modals:      DefaultModalsPath,
		Routes:      DefaultRoutesFile,
		Stubs:       DefaultStubsPath,
	}
}

// NewDefaultSystemConfig returns the default system section.
func NewDefaultSystemConfig() SystemConfig {
	return SystemConfig{
		LogLevel: DefaultLogLevel,
	}
}
