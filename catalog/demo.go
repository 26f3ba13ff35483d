package catalog

// DemoNodes returns a small built-in catalog used by the CLI when no
// catalog file is supplied, and by tests that need realistic data.
func DemoNodes() []Node {
	return []Node{
		{
			ID:          "http-request",
			Name:        "HTTP Request",
			Type:        "action",
			Description: "Make HTTP requests to any REST API endpoint with configurable method, headers, authentication, and payload.",
			Properties:  map[string]string{"method": "GET", "url": "", "authentication": "none", "timeout": "30s"},
			Tags:        []string{"api", "rest", "webhook"},
		},
		{
			ID:          "webhook-trigger",
			Name:        "Webhook",
			Type:        "trigger",
			Description: "Start a workflow when an HTTP request arrives at a generated endpoint URL.",
			Properties:  map[string]string{"path": "", "method": "POST", "response_mode": "immediately"},
			Tags:        []string{"trigger", "http", "api"},
		},
		{
			ID:          "google-sheets",
			Name:        "Google Sheets",
			Type:        "action",
			Description: "Read, append, and update rows in Google Sheets spreadsheets.",
			Properties:  map[string]string{"operation": "append", "spreadsheet_id": "", "range": "A:Z"},
			Tags:        []string{"google", "spreadsheet", "integration"},
		},
		{
			ID:          "slack",
			Name:        "Slack",
			Type:        "action",
			Description: "Send messages and files to Slack channels and users.",
			Properties:  map[string]string{"channel": "", "message": "", "as_user": "false"},
			Tags:        []string{"messaging", "notification", "integration"},
		},
		{
			ID:          "email-send",
			Name:        "Send Email",
			Type:        "action",
			Description: "Send emails over SMTP with attachments and templated bodies.",
			Properties:  map[string]string{"to": "", "subject": "", "smtp_host": ""},
			Tags:        []string{"email", "notification"},
		},
		{
			ID:          "schedule-trigger",
			Name:        "Schedule",
			Type:        "trigger",
			Description: "Run a workflow on a fixed interval or cron expression.",
			Properties:  map[string]string{"cron": "0 * * * *", "timezone": "UTC"},
			Tags:        []string{"trigger", "cron", "timer"},
		},
		{
			ID:          "postgres",
			Name:        "Postgres",
			Type:        "action",
			Description: "Execute queries and manage rows in a PostgreSQL database.",
			Properties:  map[string]string{"operation": "select", "query": "", "connection": ""},
			Tags:        []string{"database", "sql", "storage"},
		},
		{
			ID:          "code",
			Name:        "Code",
			Type:        "action",
			Description: "Run custom JavaScript or Python snippets to transform workflow data.",
			Properties:  map[string]string{"language": "javascript", "source": ""},
			Tags:        []string{"transform", "scripting"},
		},
		{
			ID:          "if-condition",
			Name:        "If",
			Type:        "control",
			Description: "Branch a workflow based on comparison conditions over incoming data.",
			Properties:  map[string]string{"condition": "", "combine": "all"},
			Tags:        []string{"control", "branch", "logic"},
		},
		{
			ID:          "merge",
			Name:        "Merge",
			Type:        "control",
			Description: "Combine data from multiple workflow branches into a single stream.",
			Properties:  map[string]string{"mode": "append"},
			Tags:        []string{"control", "combine"},
		},
	}
}
