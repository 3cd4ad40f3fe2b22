package email

func (c *Client) SendWelcomeEmail(to, firstName string) error {
	return c.SendEmail(to, "Welcome to go-blog!", TemplateWelcome, map[string]string{
		"UserFirstName": firstName,
	})
}
