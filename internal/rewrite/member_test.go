package rewrite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aulang/aulang/internal/directive"
	"github.com/aulang/aulang/internal/errcode"
	"github.com/aulang/aulang/internal/symtab"
)

func TestParseMemberSignature(t *testing.T) {
	sig, ok := ParseMemberSignature("void Widget::reset(int x) {")
	assert.True(t, ok)
	assert.Equal(t, "Widget", sig.Receiver)
	assert.Equal(t, "reset", sig.Method)

	_, ok = ParseMemberSignature("void reset(int x) {")
	assert.False(t, ok)
}

func TestRewriteDefinitionDefault(t *testing.T) {
	sig, ok := ParseMemberSignature("void Widget::reset(int x) {")
	assert.True(t, ok)
	header, body := RewriteDefinition("void Widget::reset(int x) {", sig, directive.Modifiers{}, false)
	assert.Equal(t, "void Widget_reset(Widget* this, int x);", header)
	assert.Equal(t, "void Widget_reset(Widget* restrict this, int x) {", body)
}

func TestRewriteDefinitionStaticNoReceiverParam(t *testing.T) {
	sig, ok := ParseMemberSignature("int Widget::count() {")
	assert.True(t, ok)
	header, _ := RewriteDefinition("int Widget::count() {", sig, directive.Modifiers{Static: true}, false)
	assert.Equal(t, "int Widget_count();", header)
}

func TestRewriteDefinitionConstructorBodyOmitsRestrict(t *testing.T) {
	sig, ok := ParseMemberSignature("void Widget::new() {")
	assert.True(t, ok)
	_, body := RewriteDefinition("void Widget::new() {", sig, directive.Modifiers{}, true)
	assert.Equal(t, "void Widget_new(Widget* this) {", body)
}

func TestRewriteNewCall(t *testing.T) {
	assert.Equal(t, "Widget* w = Widget_new(0);", RewriteNewCall("Widget* w = new Widget();"))
	assert.Equal(t, "Widget* w = Widget_new(0, 1, 2);", RewriteNewCall("Widget* w = new Widget(1, 2);"))
}

func TestRewriteDeleteStmtPointerFreesUnlessCustom(t *testing.T) {
	vars := symtab.NewVariableTypes()
	vars["w"] = "Widget*"
	pos := errcode.Pos{File: "x.au", Line: 1}

	out, rep := RewriteDeleteStmt("delete w;", vars, pos)
	assert.Nil(t, rep)
	assert.Equal(t, "Widget_delete(w); free(w);", out)

	vars["Widget_delete"] = symtab.Custom
	out, rep = RewriteDeleteStmt("delete w;", vars, pos)
	assert.Nil(t, rep)
	assert.Equal(t, "Widget_delete(w);", out)
}

func TestRewriteDeleteStmtValueTakesAddress(t *testing.T) {
	vars := symtab.NewVariableTypes()
	vars["w"] = "Widget"
	pos := errcode.Pos{File: "x.au", Line: 1}

	out, rep := RewriteDeleteStmt("delete w;", vars, pos)
	assert.Nil(t, rep)
	assert.Equal(t, "Widget_delete(&w);", out)
}

func TestRewriteDeleteStmtUnknownTypeReportsError(t *testing.T) {
	vars := symtab.NewVariableTypes()
	pos := errcode.Pos{File: "x.au", Line: 1}
	_, rep := RewriteDeleteStmt("delete w;", vars, pos)
	assert.NotNil(t, rep)
	assert.Equal(t, "MEM003", rep.Code)
}

func TestFindCallSitesArrowAndDot(t *testing.T) {
	sites := FindCallSites("w->reset(1); v.count();")
	assert.Len(t, sites, 2)
	assert.True(t, sites[0].OperatorIsArrow)
	assert.Equal(t, "w", sites[0].Receiver)
	assert.Equal(t, "reset", sites[0].Method)
	assert.False(t, sites[1].OperatorIsArrow)
	assert.Equal(t, "v", sites[1].Receiver)
}

func TestRewriteCallSitePointerRequiresArrow(t *testing.T) {
	vars := symtab.NewVariableTypes()
	vars["w"] = "Widget*"
	pos := errcode.Pos{File: "x.au", Line: 1}

	sites := FindCallSites("w.reset();")
	assert.Len(t, sites, 1)
	_, rep := RewriteCallSite("w.reset();", sites[0], vars, pos)
	assert.NotNil(t, rep)
	assert.Equal(t, "MEM002", rep.Code)
}

func TestRewriteCallSiteRewritesPointerCall(t *testing.T) {
	vars := symtab.NewVariableTypes()
	vars["w"] = "Widget*"
	pos := errcode.Pos{File: "x.au", Line: 1}

	sites := FindCallSites("w->reset(1);")
	assert.Len(t, sites, 1)
	out, rep := RewriteCallSite("w->reset(1);", sites[0], vars, pos)
	assert.Nil(t, rep)
	assert.Equal(t, "Widget_reset(w, 1);", out)
}

func TestRewriteCallSiteValueTakesAddress(t *testing.T) {
	vars := symtab.NewVariableTypes()
	vars["v"] = "Widget"
	pos := errcode.Pos{File: "x.au", Line: 1}

	sites := FindCallSites("v.count();")
	assert.Len(t, sites, 1)
	out, rep := RewriteCallSite("v.count();", sites[0], vars, pos)
	assert.Nil(t, rep)
	assert.Equal(t, "Widget_count(&v);", out)
}
