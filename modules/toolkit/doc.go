// Package toolkit serves the helper packages over HTTP as a chi router.
//
// Every endpoint takes and returns JSON. POST /validate accepts a record and
// a list of rules:
//
//	{
//	  "body":  {"name": "Ada", "email": "ada@example.com"},
//	  "rules": [
//	    {"field": "name", "validation": "name"},
//	    {"field": "email", "validation": "email", "verify_domain": true},
//	    {"field": "nickname", "required": false}
//	  ]
//	}
//
// and answers 200 {"data": ...} when every rule passes or 422 with the
// ordered error messages. A rule's "required" defaults to true.
package toolkit
