package validator

// Route schemas. Each is an enumerated field → rule table; Validate collects
// every violation before the handler decides anything.

func ValidateRegister(email, password, displayName, avatarURL string) Violations {
	return Schema{
		{Field: "email", Value: email, Rules: []Rule{Required, Email}},
		{Field: "password", Value: password, Rules: []Rule{Required, MinLen(5)}},
		{Field: "display_name", Value: displayName, Rules: []Rule{Required, MinLen(3), MaxLen(100)}},
		{Field: "avatar_url", Value: avatarURL, Optional: true, Rules: []Rule{URL}},
	}.Validate()
}

func ValidateLogin(email, password string) Violations {
	return Schema{
		{Field: "email", Value: email, Rules: []Rule{Required, Email}},
		{Field: "password", Value: password, Rules: []Rule{Required, MinLen(5)}},
	}.Validate()
}

func ValidatePost(title, text, imageURL string) Violations {
	return Schema{
		{Field: "title", Value: title, Rules: []Rule{Required, MinLen(3), MaxLen(200)}},
		{Field: "text", Value: text, Rules: []Rule{Required, MinLen(3)}},
		{Field: "image_url", Value: imageURL, Optional: true, Rules: []Rule{URL}},
	}.Validate()
}

// ValidatePostPartial checks only the fields present in a partial update,
// against the same rules as creation.
func ValidatePostPartial(title, text, imageURL *string) Violations {
	var s Schema
	if title != nil {
		s = append(s, Check{Field: "title", Value: *title, Rules: []Rule{Required, MinLen(3), MaxLen(200)}})
	}
	if text != nil {
		s = append(s, Check{Field: "text", Value: *text, Rules: []Rule{Required, MinLen(3)}})
	}
	if imageURL != nil {
		s = append(s, Check{Field: "image_url", Value: *imageURL, Optional: true, Rules: []Rule{URL}})
	}
	return s.Validate()
}
