// Package naming checks a proposed project name against npm package-name
// rules and against the dependencies the scaffolder installs itself.
package naming
