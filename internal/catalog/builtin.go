package catalog

// builtinControls is the fallback catalog used when no catalog file is
// configured: the NIST SP 800-171 Access Control family, with the objective
// breakdown from the 800-171A assessment procedures.
var builtinControls = []Control{
	{
		ID:         "3.1.1",
		Family:     "AC",
		Name:       "Limit system access to authorized users",
		Objectives: []string{"a", "b", "c", "d", "e", "f"},
	},
	{
		ID:         "3.1.2",
		Family:     "AC",
		Name:       "Limit system access to permitted transactions and functions",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.3",
		Family:     "AC",
		Name:       "Control the flow of CUI",
		Objectives: []string{"a", "b", "c", "d", "e"},
	},
	{
		ID:         "3.1.4",
		Family:     "AC",
		Name:       "Separate duties of individuals",
		Objectives: []string{"a", "b", "c"},
	},
	{
		ID:         "3.1.5",
		Family:     "AC",
		Name:       "Employ the principle of least privilege",
		Objectives: []string{"a", "b", "c", "d"},
	},
	{
		ID:         "3.1.6",
		Family:     "AC",
		Name:       "Use non-privileged accounts for nonsecurity functions",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.7",
		Family:     "AC",
		Name:       "Prevent non-privileged users from executing privileged functions",
		Objectives: []string{"a", "b", "c", "d"},
	},
	{
		ID:         "3.1.8",
		Family:     "AC",
		Name:       "Limit unsuccessful logon attempts",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.9",
		Family:     "AC",
		Name:       "Provide privacy and security notices",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.10",
		Family:     "AC",
		Name:       "Use session lock with pattern-hiding displays",
		Objectives: []string{"a", "b", "c"},
	},
	{
		ID:         "3.1.11",
		Family:     "AC",
		Name:       "Terminate user sessions automatically",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.12",
		Family:     "AC",
		Name:       "Monitor and control remote access sessions",
		Objectives: []string{"a", "b", "c", "d"},
	},
	{
		ID:         "3.1.13",
		Family:     "AC",
		Name:       "Use cryptography to protect remote access sessions",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.14",
		Family:     "AC",
		Name:       "Route remote access via managed access control points",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.15",
		Family:     "AC",
		Name:       "Authorize remote execution of privileged commands",
		Objectives: []string{"a", "b", "c", "d"},
	},
	{
		ID:         "3.1.16",
		Family:     "AC",
		Name:       "Authorize wireless access before connections",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.17",
		Family:     "AC",
		Name:       "Protect wireless access with authentication and encryption",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.18",
		Family:     "AC",
		Name:       "Control connection of mobile devices",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.19",
		Family:     "AC",
		Name:       "Encrypt CUI on mobile devices and platforms",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.20",
		Family:     "AC",
		Name:       "Verify and control connections to external systems",
		Objectives: []string{"a", "b", "c", "d"},
	},
	{
		ID:         "3.1.21",
		Family:     "AC",
		Name:       "Limit use of portable storage devices on external systems",
		Objectives: []string{"a", "b"},
	},
	{
		ID:         "3.1.22",
		Family:     "AC",
		Name:       "Control CUI posted on publicly accessible systems",
		Objectives: []string{"a", "b", "c", "d"},
	},
}
