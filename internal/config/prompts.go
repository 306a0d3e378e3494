package config

// Prompt templates use text/template syntax. The map and reduce templates
// receive {{.Text}}; the translate template also receives {{.Language}}.
const (
	DefaultMapPrompt = `
Please summarize the below speech:
Speech:` + "`{{.Text}}`" + `
Summary:
`

	DefaultReducePrompt = `
Provide the final summary of the entire speech with these important points.
Add a Motivation Title, start the precise summary with an introduction, and provide the summary in numbered points.

Speech: {{.Text}}
`

	DefaultTranslatePrompt = `
Write a summary of the following speech:
Speech:{{.Text}}
Translate the precise summary to {{.Language}}
`
)
