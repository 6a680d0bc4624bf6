package transfer

// resumeSchema is the shape check applied to imported documents. Missing
// optional fields are allowed and default later, but anything present must
// have the right type, so a structurally wrong file cannot silently produce
// a broken document.
const resumeSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "properties": {
    "personalInfo": {
      "type": "object",
      "properties": {
        "fullName": {"type": "string"},
        "email": {"type": "string"},
        "phone": {"type": "string"},
        "location": {"type": "string"},
        "website": {"type": "string"},
        "linkedin": {"type": "string"},
        "github": {"type": "string"}
      }
    },
    "summary": {"type": "string"},
    "workExperience": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string"},
          "company": {"type": "string"},
          "position": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": ["string", "null"]},
          "endDate": {"type": ["string", "null"]},
          "current": {"type": "boolean"},
          "responsibilities": {"type": "array", "items": {"type": "string"}},
          "techStack": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "education": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string"},
          "institution": {"type": "string"},
          "degree": {"type": "string"},
          "field": {"type": "string"},
          "location": {"type": "string"},
          "startDate": {"type": ["string", "null"]},
          "endDate": {"type": ["string", "null"]},
          "gpa": {"type": "string"},
          "honors": {"type": "array", "items": {"type": "string"}},
          "activities": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "projects": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id"],
        "properties": {
          "id": {"type": "string"},
          "name": {"type": "string"},
          "description": {"type": "string"},
          "techStack": {"type": "array", "items": {"type": "string"}},
          "link": {"type": "string"},
          "github": {"type": "string"},
          "highlights": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "skills": {
      "type": "object",
      "properties": {
        "languages": {"type": "array", "items": {"type": "string"}},
        "frameworks": {"type": "array", "items": {"type": "string"}},
        "tools": {"type": "array", "items": {"type": "string"}},
        "databases": {"type": "array", "items": {"type": "string"}}
      }
    },
    "interests": {"type": "array", "items": {"type": "string"}},
    "sectionOrder": {
      "type": "array",
      "items": {
        "enum": ["summary", "workExperience", "education", "projects", "skills", "interests"]
      }
    }
  }
}`
