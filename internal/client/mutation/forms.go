package mutation

// TemplateForm ввод для create_template
type TemplateForm struct {
	Name        string
	Description string
}

// IssueForm ввод для issue_certificate.
// TemplateIndex хранится строкой, как его ввёл пользователь.
type IssueForm struct {
	TemplateIndex string
	Recipient     string
	StudentName   string
	ClassName     string
	Grades        string
}

// ClaimForm ввод для claim_certificate
type ClaimForm struct {
	Issuer string
	Index  string
}
