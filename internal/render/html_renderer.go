package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

const baseStyle = `
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 32px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      color: #111827;
      background: #f9fafb;
    }
    .page {
      max-width: 960px;
      margin: 0 auto;
    }
    h1 { font-size: 24px; }
    table {
      width: 100%;
      border-collapse: collapse;
      font-size: 14px;
      background: #ffffff;
    }
    th, td {
      padding: 10px;
      border-bottom: 1px solid #e5e7eb;
      text-align: left;
    }
    th {
      text-transform: uppercase;
      font-size: 11px;
      letter-spacing: 0.04em;
      color: #6b7280;
    }
    .toolbar {
      display: flex;
      justify-content: space-between;
      gap: 8px;
      margin: 16px 0;
    }
    input[type=text], input[type=email], input[type=password], input[type=number], select {
      padding: 8px;
      border: 1px solid #d1d5db;
      border-radius: 4px;
      font-size: 14px;
    }
    .button {
      padding: 8px 16px;
      border: 0;
      border-radius: 4px;
      background: #2563eb;
      color: #ffffff;
      font-size: 14px;
      cursor: pointer;
      text-decoration: none;
      display: inline-block;
    }
    .button.secondary { background: #6b7280; }
    .banner {
      position: fixed;
      top: 16px;
      left: 50%;
      transform: translateX(-50%);
      background: #22c55e;
      color: #ffffff;
      border-radius: 4px;
      box-shadow: 0 1px 4px rgba(0,0,0,0.2);
      padding: 8px 16px;
      transition: opacity 0.5s;
    }
    .field { margin-bottom: 16px; }
    .field label { display: block; margin-bottom: 4px; font-size: 14px; }
    .field-error { color: #dc2626; font-size: 13px; margin-top: 4px; }
    .form-message { color: #dc2626; font-size: 14px; margin: 12px 0; }
    .status {
      padding: 2px 8px;
      border-radius: 9999px;
      font-size: 12px;
      text-transform: capitalize;
    }
    .status.pending { background: #f3f4f6; color: #6b7280; }
    .status.paid { background: #22c55e; color: #ffffff; }
    .pagination { margin-top: 16px; display: flex; gap: 8px; justify-content: center; }
    .pagination a, .pagination span { padding: 4px 10px; border: 1px solid #e5e7eb; border-radius: 4px; text-decoration: none; color: #111827; }
    .pagination .current { background: #2563eb; color: #ffffff; border-color: #2563eb; }
`

const listingTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoices</title>
  <style>` + baseStyle + `</style>
</head>
<body>
  <div class="page">
    {{if .Banner}}
    <div class="banner" id="banner">{{.Banner}}</div>
    <script>
      setTimeout(function () {
        var el = document.getElementById('banner');
        if (el) { el.style.opacity = '0'; }
      }, 3000);
    </script>
    {{end}}

    <h1>Invoices</h1>

    <div class="toolbar">
      <form method="GET" action="/dashboard/invoices">
        <input type="text" name="query" placeholder="Search invoices..." value="{{.Query}}" />
        <button class="button secondary" type="submit">Search</button>
      </form>
      <a class="button" href="/dashboard/invoices/create">Create Invoice</a>
    </div>

    <table>
      <thead>
        <tr>
          <th>Customer</th>
          <th>Email</th>
          <th>Amount</th>
          <th>Date</th>
          <th>Status</th>
          <th></th>
        </tr>
      </thead>
      <tbody>
        {{range .Invoices}}
        <tr>
          <td>{{.CustomerName}}</td>
          <td>{{.CustomerEmail}}</td>
          <td>{{formatMoney .Amount}}</td>
          <td>{{formatDate .Date}}</td>
          <td><span class="status {{.Status}}">{{.Status}}</span></td>
          <td>
            <a class="button secondary" href="/dashboard/invoices/{{.ID}}/edit">Edit</a>
            <form method="POST" action="/dashboard/invoices/{{.ID}}/delete" style="display:inline">
              <button class="button secondary" type="submit">Delete</button>
            </form>
          </td>
        </tr>
        {{end}}
      </tbody>
    </table>

    {{if gt .TotalPages 1}}
    <div class="pagination">
      {{$query := .Query}}
      {{$current := .Page}}
      {{range pages .TotalPages}}
        {{if eq . $current}}
        <span class="current">{{.}}</span>
        {{else}}
        <a href="/dashboard/invoices?query={{$query}}&page={{.}}">{{.}}</a>
        {{end}}
      {{end}}
    </div>
    {{end}}
  </div>
</body>
</html>
`

const formTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>{{.Title}}</title>
  <style>` + baseStyle + `</style>
</head>
<body>
  <div class="page">
    <h1>{{.Title}}</h1>

    <form method="POST" action="{{.Action}}">
      <div class="field">
        <label for="customer_id">Choose customer</label>
        <select id="customer_id" name="customer_id">
          <option value="">Select a customer</option>
          {{$selected := .Values.CustomerID}}
          {{range .Customers}}
          <option value="{{.ID}}" {{if eq (print .ID) $selected}}selected{{end}}>{{.Name}}</option>
          {{end}}
        </select>
        {{range fieldErrors .Errors "customer_id"}}<div class="field-error">{{.}}</div>{{end}}
      </div>

      <div class="field">
        <label for="amount">Choose an amount</label>
        <input id="amount" type="number" name="amount" step="0.01" placeholder="Enter USD amount" value="{{.Values.Amount}}" />
        {{range fieldErrors .Errors "amount"}}<div class="field-error">{{.}}</div>{{end}}
      </div>

      <div class="field">
        <label>Set the invoice status</label>
        <label><input type="radio" name="status" value="pending" {{if eq .Values.Status "pending"}}checked{{end}} /> Pending</label>
        <label><input type="radio" name="status" value="paid" {{if eq .Values.Status "paid"}}checked{{end}} /> Paid</label>
        {{range fieldErrors .Errors "status"}}<div class="field-error">{{.}}</div>{{end}}
      </div>

      {{if .Message}}<div class="form-message">{{.Message}}</div>{{end}}

      <a class="button secondary" href="/dashboard/invoices">Cancel</a>
      <button class="button" type="submit">{{.SubmitLabel}}</button>
    </form>
  </div>
</body>
</html>
`

const loginTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Sign in</title>
  <style>` + baseStyle + `</style>
</head>
<body>
  <div class="page" style="max-width: 400px;">
    <h1>Please log in to continue.</h1>

    <form method="POST" action="/login">
      <div class="field">
        <label for="email">Email</label>
        <input id="email" type="email" name="email" placeholder="Enter your email address" value="{{.Email}}" />
      </div>
      <div class="field">
        <label for="password">Password</label>
        <input id="password" type="password" name="password" placeholder="Enter password" />
      </div>

      {{if .Message}}<div class="form-message">{{.Message}}</div>{{end}}

      <button class="button" type="submit">Log in</button>
    </form>
  </div>
</body>
</html>
`

type HTMLRenderer struct {
	listing *template.Template
	form    *template.Template
	login   *template.Template
}

func NewRenderer() Renderer {
	funcs := template.FuncMap{
		"formatMoney": formatMoney,
		"formatDate":  formatDate,
		"fieldErrors": fieldErrors,
		"pages":       pages,
	}
	return &HTMLRenderer{
		listing: template.Must(template.New("listing").Funcs(funcs).Parse(listingTemplate)),
		form:    template.Must(template.New("form").Funcs(funcs).Parse(formTemplate)),
		login:   template.Must(template.New("login").Funcs(funcs).Parse(loginTemplate)),
	}
}

func (r *HTMLRenderer) ListingPage(data ListingData) (string, error) {
	return execute(r.listing, data)
}

func (r *HTMLRenderer) FormPage(data FormData) (string, error) {
	if data.SubmitLabel == "" {
		data.SubmitLabel = "Save"
	}
	return execute(r.form, data)
}

func (r *HTMLRenderer) LoginPage(data LoginData) (string, error) {
	return execute(r.login, data)
}

func execute(tpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func formatMoney(cents int64) string {
	return fmt.Sprintf("$%.2f", float64(cents)/100.0)
}

func formatDate(value time.Time) string {
	if value.IsZero() {
		return "-"
	}
	return value.UTC().Format("2006-01-02")
}

func fieldErrors(errors map[string][]string, field string) []string {
	if errors == nil {
		return nil
	}
	return errors[field]
}

func pages(total int) []int {
	out := make([]int, 0, total)
	for i := 1; i <= total; i++ {
		out = append(out, i)
	}
	return out
}
