// Package template holds the ordered catalog of document section
// templates, placeholder field substitution, document section
// detection, and the smart insertion-point heuristic.
package template

import (
	"errors"
	"strings"
)

// ErrUnknownSection is returned for a section name not in the catalog.
var ErrUnknownSection = errors.New("unknown section")

// ErrSectionExists is returned when the target section is already
// present in the document.
var ErrSectionExists = errors.New("section already exists")

// Section names a catalog entry.
type Section string

const (
	SectionQuickPR         Section = "quickPR"
	SectionBadges          Section = "badges"
	SectionDescription     Section = "description"
	SectionQuickstart      Section = "quickstart"
	SectionPrerequisites   Section = "prerequisites"
	SectionInstallation    Section = "installation"
	SectionConfiguration   Section = "configuration"
	SectionUsage           Section = "usage"
	SectionTesting         Section = "testing"
	SectionAPI             Section = "api"
	SectionTroubleshooting Section = "troubleshooting"
	SectionDeployment      Section = "deployment"
	SectionContributing    Section = "contributing"
	SectionSecurity        Section = "security"
	SectionLicense         Section = "license"
	SectionChangelog       Section = "changelog"
)

// Order is the canonical document order used by the insertion-point
// heuristic.
var Order = []Section{
	SectionQuickPR, SectionBadges, SectionDescription, SectionQuickstart,
	SectionPrerequisites, SectionInstallation, SectionConfiguration,
	SectionUsage, SectionTesting, SectionAPI, SectionTroubleshooting,
	SectionDeployment, SectionContributing, SectionSecurity,
	SectionLicense, SectionChangelog,
}

// md swaps the ''' stand-in for real code fences so the bodies can live
// in raw string literals.
func md(s string) string { return strings.ReplaceAll(s, "'''", "```") }

var bodies = map[Section]string{
	SectionBadges: md(`<!-- Badges (optional) -->
![Build Status](https://img.shields.io/badge/build-{{buildStatus}}-brightgreen)
![Version](https://img.shields.io/badge/version-{{buildVersion}}-blue)
![License](https://img.shields.io/badge/license-{{licenseType}}-blue)

`),

	SectionDescription: md(`## Description

{{projectDesc}}

**Highlights**
-
-
-

`),

	SectionQuickstart: md(`## Quick Start

1. Clone:
   '''bash
   git clone https://github.com/{{username}}/{{projectName}}.git
   cd {{projectName}}
   '''

2. Install:
   '''bash
   # e.g. npm install / pnpm install / pip install -r requirements.txt
   install-command
   '''

3. Run:
   '''bash
   start-command
   '''

`),

	SectionPrerequisites: md(`## Prerequisites

-
-
-

`),

	SectionInstallation: md(`## Installation

### Install
'''bash
install-command
'''

`),

	SectionConfiguration: md(`## Configuration

### Environment
Set required environment variables (example):

'''env
KEY=value
'''

`),

	SectionUsage: md(`## Usage

### Example
'''text
# Add a minimal, copy/pasteable example here.
'''

`),

	SectionTesting: md(`## Testing

'''bash
test-command
'''

`),

	SectionAPI: "## API Documentation\n\n### Base URL\n{{apiUrl}}\n\n" +
		"### Authentication\n-\n\n" +
		"### Endpoints\n- `GET /...` —\n- `POST /...` —\n\n",

	SectionTroubleshooting: md(`## Troubleshooting

### Common Issues
- **Problem:** … **Fix:** …
- **Problem:** … **Fix:** …

`),

	SectionDeployment: md(`## Deployment

### Build
'''bash
build-command
'''

### Deploy
'''bash
deploy-command
'''

`),

	SectionContributing: md(`## Contributing

### How to contribute
1. Fork and create a branch
2. Make changes (with tests if applicable)
3. Open a PR with context and screenshots/logs if relevant

`),

	SectionSecurity: md(`## Security

If you discover a security vulnerability, please email {{contactEmail}}. Do not open a public issue.

We will respond as soon as possible.

`),

	SectionLicense: md(`## License

This project is licensed under the {{licenseType}} License - see the [LICENSE](LICENSE) file for details.

`),

	SectionChangelog: md(`## Changelog

### [Unreleased]
-

### [{{buildVersion}}] - {{date}}
-

`),

	SectionQuickPR: md(`# PR: {{prTitle}}

**Date:** {{date}}

## Overview
<!-- Brief description of what this PR accomplishes and why -->


## Key Changes

### Component/Module Updates
-

### Dependency Updates
-

### Configuration Changes
-

### Database/Schema Changes
-

## Testing
- [ ] Unit tests passing
- [ ] Integration tests passing
- [ ] Cypress/E2E tests updated
- [ ] Manual testing complete
- [ ] Accessibility verified

## Deployment Notes
<!-- Any special deployment instructions, migrations, or rollout considerations -->


## Related
**Ticket:** {{ticketNumber}}

`),
}

// Body returns the raw template for a section, with placeholder tokens
// still in place.
func Body(s Section) (string, error) {
	b, ok := bodies[s]
	if !ok {
		return "", ErrUnknownSection
	}
	return b, nil
}
