package auth

// BaseScopes are always required for user identity.
var BaseScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"openid",
}

// ServiceScopes maps service names to their full-access OAuth scopes.
// Drive access is needed for template copying, search, and export, not
// just the presentations themselves.
var ServiceScopes = map[string][]string{
	"slides": {
		"https://www.googleapis.com/auth/presentations",
	},
	"drive": {
		"https://www.googleapis.com/auth/drive",
	},
}

// ReadOnlyScopes maps service names to their read-only OAuth scopes.
// Used when --read-only is set.
var ReadOnlyScopes = map[string][]string{
	"slides": {
		"https://www.googleapis.com/auth/presentations.readonly",
	},
	"drive": {
		"https://www.googleapis.com/auth/drive.readonly",
	},
}

// AllScopes returns the combined set of scopes for the given services and mode.
func AllScopes(services []string, readOnly bool) []string {
	seen := make(map[string]bool)
	var scopes []string

	for _, s := range BaseScopes {
		if !seen[s] {
			scopes = append(scopes, s)
			seen[s] = true
		}
	}

	scopeMap := ServiceScopes
	if readOnly {
		scopeMap = ReadOnlyScopes
	}

	// If no services specified, include all
	if len(services) == 0 {
		for _, svcScopes := range scopeMap {
			for _, s := range svcScopes {
				if !seen[s] {
					scopes = append(scopes, s)
					seen[s] = true
				}
			}
		}
	} else {
		for _, svc := range services {
			for _, s := range scopeMap[svc] {
				if !seen[s] {
					scopes = append(scopes, s)
					seen[s] = true
				}
			}
		}
	}

	return scopes
}
