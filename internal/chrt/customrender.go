//    BERTopicBoard
//    Copyright: E Gunderson 2024
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package chrt

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"regexp"
	"strings"
)

//
// OVERRIDE GO-ECHARTS [original code at https://github.com/go-echarts/go-echarts]
//

// go-echarts wants to emit a whole html document; the results page only wants the div and its script

var fpattern = regexp.MustCompile(`(__f__")|("__f__)|(__f__)`)

// series names come straight from the csv: keep "</script>" and friends from closing the script block
var jsonhtml = strings.NewReplacer("<", `\u003c`, ">", `\u003e`, "&", `\u0026`)

// ModRenderer etc modified from https://github.com/go-echarts/go-echarts/render/engine.go
type ModRenderer interface {
	Render(w io.Writer) error
}

type CustomPageRender struct {
	c      interface{}
	before []func()
}

// NewCustomPageRender returns a render implementation for Page.
func NewCustomPageRender(c interface{}, before ...func()) ModRenderer {
	return &CustomPageRender{c: c, before: before}
}

// Render renders the page into the given io.Writer.
func (r *CustomPageRender) Render(w io.Writer) error {
	const (
		TEMPLNAME = "chart"
	)

	for _, fn := range r.before {
		fn()
	}

	tpl, err := ModTemplate(TEMPLNAME, []string{CustomBaseTpl, CustomPageTpl})
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err = tpl.ExecuteTemplate(&buf, TEMPLNAME, r.c); err != nil {
		return err
	}

	_, err = w.Write(fpattern.ReplaceAll(buf.Bytes(), []byte("")))
	return err
}

// ModTemplate creates a new template with the given name and parsed contents.
func ModTemplate(name string, contents []string) (*template.Template, error) {
	const (
		JSNAME   = "safeJS"
		JSONNAME = "safeJSON"
	)

	tpl := template.New(name).Funcs(template.FuncMap{
		JSNAME: func(s interface{}) template.JS {
			return template.JS(fmt.Sprint(s))
		},
		JSONNAME: func(s interface{}) template.JS {
			return template.JS(jsonhtml.Replace(fmt.Sprint(s)))
		},
	})

	for _, cont := range contents {
		var err error
		if tpl, err = tpl.Parse(cont); err != nil {
			return nil, err
		}
	}
	return tpl, nil
}

// CustomBaseTpl etc. adapted from https://github.com/go-echarts/go-echarts/templates/
var CustomBaseTpl = `
{{- define "base" }}
<div class="chartbox">
    <div class="chartitem" id="{{ .ChartID }}" style="width:{{ .Initialization.Width }};height:{{ .Initialization.Height }};"></div>
</div>
<script type="text/javascript">
    "use strict";
    let goecharts_{{ .ChartID | safeJS }} = echarts.init(document.getElementById('{{ .ChartID | safeJS }}'), "{{ .Theme }}");
    let option_{{ .ChartID | safeJS }} = {{ .JSONNotEscaped | safeJSON }};
    goecharts_{{ .ChartID | safeJS }}.setOption(option_{{ .ChartID | safeJS }});
    {{- range .JSFunctions.Fns }}
    {{ . | safeJS }}
    {{- end }}
</script>
{{ end }}
`

var CustomPageTpl = `
{{- define "chart" }}
	{{- range .Charts }} {{ template "base" . }} {{- end }}
{{ end }}
`
