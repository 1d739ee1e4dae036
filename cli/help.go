package cli

const AppHelpTemplate = `usage: {{.App.UsageText}}
{{if .App.Usage}}
   {{wrap .App.Usage 3}}
{{end}}
  Options:
{{range .App.VisibleFlags}}    {{.}}
{{end}}
  Any other argument is passed on to Maven.
`

const AppVersionTemplate = `{{.App.Name}} {{.App.Version}}
`
