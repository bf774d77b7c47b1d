package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SearchDocumentsTool is declared in the catalog but dispatched by the
// conversation orchestrator, not the registry.
const SearchDocumentsTool = "search_documents"

const defaultEmployeeID = "EMP001"

// ParamSpec describes one tool parameter. Arguments are validated against
// the schema before dispatch instead of being duck-typed into the call.
type ParamSpec struct {
	Name        string
	Type        string
	Description string
	Required    bool
	Default     string
}

// Definition describes one callable tool for both the prompt and dispatch.
type Definition struct {
	Name        string
	Description string
	Params      []ParamSpec
}

type toolFunc func(ctx context.Context, args map[string]string) (json.RawMessage, error)

// Registry holds the fixed tool catalog. Execute never returns a Go error:
// every failure is folded into an error-shaped JSON result so a bad tool
// call can never abort a turn.
type Registry struct {
	client *HRClient
	defs   []Definition
	funcs  map[string]toolFunc
}

func NewRegistry(client *HRClient) *Registry {
	r := &Registry{client: client}

	employeeParam := ParamSpec{
		Name:        "employee_id",
		Type:        "string",
		Description: "Employee ID. Defaults to EMP001.",
		Default:     defaultEmployeeID,
	}

	r.defs = []Definition{
		{
			Name:        "get_vacation_days",
			Description: "Get the number of remaining vacation/holiday days for an employee. Use this when the user asks about vacation days, PTO, holidays, time off balance, or annual leave.",
			Params:      []ParamSpec{employeeParam},
		},
		{
			Name:        "get_sick_leave",
			Description: "Get sick leave balance and usage for an employee. Use this when the user asks about sick days, sick leave, or illness-related absence.",
			Params:      []ParamSpec{employeeParam},
		},
		{
			Name:        "get_upcoming_leave",
			Description: "Get upcoming scheduled leave/time-off for an employee. Use this when the user asks about planned vacations, scheduled time off, or upcoming leave.",
			Params:      []ParamSpec{employeeParam},
		},
		{
			Name:        "get_employee_profile",
			Description: "Get employee profile information like name, department, position, manager, start date. Use this when the user asks about their profile, who their manager is, or what team they are on.",
			Params:      []ParamSpec{employeeParam},
		},
		{
			Name:        "get_payslip_info",
			Description: "Get payslip/salary information including gross salary, net salary, deductions, next pay date. Use this when the user asks about salary, pay, payslip, deductions, or when they get paid.",
			Params:      []ParamSpec{employeeParam},
		},
		{
			Name:        SearchDocumentsTool,
			Description: "Search the company knowledge base (policies, FAQ, onboarding guide, benefits) AND all uploaded documents for information.",
			Params: []ParamSpec{{
				Name:        "query",
				Type:        "string",
				Description: "The search query to find relevant information in documents.",
				Required:    true,
			}},
		},
	}

	r.funcs = map[string]toolFunc{
		"get_vacation_days": func(ctx context.Context, args map[string]string) (json.RawMessage, error) {
			return client.VacationDays(ctx, args["employee_id"])
		},
		"get_sick_leave": func(ctx context.Context, args map[string]string) (json.RawMessage, error) {
			return client.SickLeave(ctx, args["employee_id"])
		},
		"get_upcoming_leave": func(ctx context.Context, args map[string]string) (json.RawMessage, error) {
			return client.UpcomingLeave(ctx, args["employee_id"])
		},
		"get_employee_profile": func(ctx context.Context, args map[string]string) (json.RawMessage, error) {
			return client.EmployeeProfile(ctx, args["employee_id"])
		},
		"get_payslip_info": func(ctx context.Context, args map[string]string) (json.RawMessage, error) {
			return client.PayslipInfo(ctx, args["employee_id"])
		},
	}

	return r
}

// Definitions returns the full tool catalog, search_documents included.
func (r *Registry) Definitions() []Definition {
	return r.defs
}

// Descriptions renders the catalog for the system prompt.
func (r *Registry) Descriptions() string {
	var b strings.Builder
	b.WriteString("Available tools:\n")
	for _, def := range r.defs {
		params := make([]string, len(def.Params))
		for i, p := range def.Params {
			params[i] = fmt.Sprintf("%s: %s", p.Name, p.Type)
		}
		fmt.Fprintf(&b, "- **%s**(%s): %s\n", def.Name, strings.Join(params, ", "), def.Description)
	}
	return b.String()
}

func (r *Registry) definition(name string) *Definition {
	for i := range r.defs {
		if r.defs[i].Name == name {
			return &r.defs[i]
		}
	}
	return nil
}

// validateArgs checks the arguments against the parameter schema, fills in
// defaults, and rejects unknown parameters.
func validateArgs(def *Definition, args map[string]string) (map[string]string, error) {
	known := make(map[string]bool, len(def.Params))
	validated := make(map[string]string, len(def.Params))

	for _, p := range def.Params {
		known[p.Name] = true
		if v, ok := args[p.Name]; ok && v != "" {
			validated[p.Name] = v
		} else if p.Default != "" {
			validated[p.Name] = p.Default
		} else if p.Required {
			return nil, fmt.Errorf("invalid_arguments: missing required parameter %q", p.Name)
		}
	}

	for name := range args {
		if !known[name] {
			return nil, fmt.Errorf("invalid_arguments: unknown parameter %q", name)
		}
	}

	return validated, nil
}

func errorResult(format string, a ...interface{}) string {
	out, _ := json.Marshal(map[string]string{"error": fmt.Sprintf(format, a...)})
	return string(out)
}

// Execute runs a tool by name and returns the result as an indented JSON
// string. Unknown tools, bad arguments and backend failures all come back as
// {"error": ...} so the model can recover conversationally.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]string) string {
	def := r.definition(name)
	if def == nil {
		return errorResult("Unknown tool: %s", name)
	}
	if name == SearchDocumentsTool {
		// Routed through the retrieval engine by the orchestrator.
		return errorResult("Tool %s is handled by the document search engine", name)
	}

	validated, err := validateArgs(def, args)
	if err != nil {
		return errorResult("%s", err.Error())
	}

	fn := r.funcs[name]
	raw, err := fn(ctx, validated)
	if err != nil {
		return errorResult("Tool execution failed: %s", err.Error())
	}

	var pretty map[string]interface{}
	if err := json.Unmarshal(raw, &pretty); err != nil {
		return string(raw)
	}
	out, err := json.MarshalIndent(pretty, "", "  ")
	if err != nil {
		return string(raw)
	}
	return string(out)
}
