package validate

// Credentials is a validated register/login body. The password only ever
// travels inward; responses never echo it.
type Credentials struct {
	Username string
	Password string
}

var credentialSchema = Schema{
	Fields: []Field{
		{Name: "username", Required: true, Constraints: []Constraint{StringLength(3, 80)}},
		{Name: "password", Required: true, Constraints: []Constraint{StringLength(6, 128)}},
	},
}

func ParseCredentials(raw map[string]any) (Credentials, Errors) {
	errs := credentialSchema.Validate(raw)
	if errs.Any() {
		return Credentials{}, errs
	}
	username, _ := raw["username"].(string)
	password, _ := raw["password"].(string)
	return Credentials{Username: username, Password: password}, nil
}
