// MovieLens Web - Movie Recommendation Frontend
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movielens-web

package ui

import (
	"html/template"
)

// View is the page as seen by a Controller. Every method addresses an element
// by ID; the browser applies the change.
type View interface {
	// SetHTML replaces an element's inner HTML.
	SetHTML(id string, html template.HTML)
	// SetText replaces an element's text content.
	SetText(id, text string)
	// Show and Hide toggle the "show" class (loading spinners, search dropdown).
	Show(id string)
	Hide(id string)
	// SetDisplay sets an element's CSS display ("grid", "none").
	SetDisplay(id, display string)
	// SetValue sets an input's value.
	SetValue(id, value string)
	// SetControl sets a button's disabled state and label.
	SetControl(id string, disabled bool, label string)
	// Alert shows a blocking alert.
	Alert(message string)
	// ScrollTo smoothly scrolls an element into view.
	ScrollTo(id string)
	// CreateChart draws a chart on a canvas; DestroyChart removes it.
	CreateChart(canvasID string, chart ChartConfig)
	DestroyChart(canvasID string)
}

// Patch operations sent to the browser.
const (
	OpHTML         = "html"
	OpText         = "text"
	OpShow         = "show"
	OpHide         = "hide"
	OpDisplay      = "display"
	OpValue        = "value"
	OpControl      = "control"
	OpAlert        = "alert"
	OpScroll       = "scroll"
	OpChart        = "chart"
	OpDestroyChart = "destroyChart"
)

// Patch is one view change on the wire.
type Patch struct {
	Op       string      `json:"op"`
	Target   string      `json:"target,omitempty"`
	HTML     string      `json:"html,omitempty"`
	Text     string      `json:"text,omitempty"`
	Value    string      `json:"value,omitempty"`
	Display  string      `json:"display,omitempty"`
	Disabled *bool       `json:"disabled,omitempty"`
	Label    string      `json:"label,omitempty"`
	Message  string      `json:"message,omitempty"`
	Chart    ChartConfig `json:"chart,omitempty"`
}

// PatchView turns View calls into Patches handed to a sink, typically a
// websocket client's send queue.
type PatchView struct {
	sink func(Patch)
}

// NewPatchView creates a View that forwards every change to sink.
func NewPatchView(sink func(Patch)) *PatchView {
	return &PatchView{sink: sink}
}

func (v *PatchView) SetHTML(id string, html template.HTML) {
	v.sink(Patch{Op: OpHTML, Target: id, HTML: string(html)})
}

func (v *PatchView) SetText(id, text string) {
	v.sink(Patch{Op: OpText, Target: id, Text: text})
}

func (v *PatchView) Show(id string) {
	v.sink(Patch{Op: OpShow, Target: id})
}

func (v *PatchView) Hide(id string) {
	v.sink(Patch{Op: OpHide, Target: id})
}

func (v *PatchView) SetDisplay(id, display string) {
	v.sink(Patch{Op: OpDisplay, Target: id, Display: display})
}

func (v *PatchView) SetValue(id, value string) {
	v.sink(Patch{Op: OpValue, Target: id, Value: value})
}

func (v *PatchView) SetControl(id string, disabled bool, label string) {
	v.sink(Patch{Op: OpControl, Target: id, Disabled: &disabled, Label: label})
}

func (v *PatchView) Alert(message string) {
	v.sink(Patch{Op: OpAlert, Message: message})
}

func (v *PatchView) ScrollTo(id string) {
	v.sink(Patch{Op: OpScroll, Target: id})
}

func (v *PatchView) CreateChart(canvasID string, chart ChartConfig) {
	v.sink(Patch{Op: OpChart, Target: canvasID, Chart: chart})
}

func (v *PatchView) DestroyChart(canvasID string) {
	v.sink(Patch{Op: OpDestroyChart, Target: canvasID})
}
