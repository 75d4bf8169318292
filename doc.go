// Package thermact computes liquid-phase activity coefficients of
// non-electrolyte mixtures with group-contribution and local-composition
// models.
//
// 🚀 What is thermact?
//
//	A small set of packages that turn a parameter table and a list of
//	substances into γ, a = γ·x and GE/RT at any composition and temperature:
//		• UNIFAC (classic) and modified UNIFAC (Dortmund)
//		• weight-fraction and free-volume variants, GE/RT for viscosity models
//		• UNIQUAC on component-level parameters
//		• binary sweeps exported as CSV or plots
//
// Under the hood, everything is organized in subpackages:
//
//	activity/         — Model contract, sentinel errors, validators, x ↔ w
//	unifac/           — parameter tables, substance registry, Engine and variants
//	unifac/datasets/  — builtin VLE and Dortmund subsets, common substances
//	uniquac/          — UNIQUAC model
//	curve/            — binary composition sweeps, CSV and gonum/plot output
//	config/           — YAML configuration for the thermact command
//	cmd/thermact/     — command-line front end
//
// Quick start:
//
//	table, _ := datasets.VLE()
//	reg, _ := datasets.Substances("ethanol", "water")
//	eng, _ := unifac.New(table, reg)
//	gamma, _ := eng.Coefficients([]float64{0.3, 0.7}, 298.15)
package thermact
