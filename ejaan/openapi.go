package ejaan

const openAPISpec = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Ejaan API",
    "description": "Pemeriksa teks bahasa Indonesia: kata tidak baku, salah eja, tanda baca, kapitalisasi, dan margin dokumen.",
    "version": "1.0.0"
  },
  "paths": {
    "/v1/check": {
      "post": {
        "summary": "Check text",
        "description": "Memeriksa teks dan mengembalikan daftar kesalahan terurut berdasarkan posisi.",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": { "$ref": "#/components/schemas/CheckRequest" },
              "examples": {
                "dasar": { "value": { "text": "saya gak pergi kesana." } },
                "dengan margin": { "value": { "text": "Ini dokumen.", "margins": { "top": 2.0, "bottom": 2.5, "left": 2.5, "right": 2.5 } } },
                "kata dilindungi": { "value": { "text": "Kami memakai kafka.", "words": ["kafka"] } }
              }
            }
          }
        },
        "responses": {
          "200": {
            "description": "Hasil pemeriksaan",
            "content": {
              "application/json": {
                "schema": { "$ref": "#/components/schemas/Result" }
              }
            }
          },
          "400": { "description": "Permintaan tidak valid" }
        }
      }
    },
    "/api/v1/custom-word": {
      "post": {
        "summary": "Add custom word",
        "requestBody": {
          "required": true,
          "content": { "application/json": { "schema": { "type": "object", "properties": { "word": { "type": "string" } } } } }
        },
        "responses": {
          "201": { "description": "Tersimpan" },
          "503": { "description": "Kamus kustom tidak dikonfigurasi" }
        }
      }
    },
    "/api/v1/custom-word/{word}": {
      "delete": {
        "summary": "Remove custom word",
        "parameters": [ { "name": "word", "in": "path", "required": true, "schema": { "type": "string" } } ],
        "responses": {
          "200": { "description": "Terhapus" },
          "503": { "description": "Kamus kustom tidak dikonfigurasi" }
        }
      }
    },
    "/health": {
      "get": {
        "summary": "Health",
        "responses": { "200": { "description": "Servis normal" } }
      }
    }
  },
  "components": {
    "schemas": {
      "CheckRequest": {
        "type": "object",
        "required": ["text"],
        "properties": {
          "text":    { "type": "string", "description": "Teks yang diperiksa" },
          "margins": { "$ref": "#/components/schemas/Margins" },
          "words":   { "type": "array", "items": { "type": "string" }, "description": "Kata yang tidak boleh ditandai" },
          "dict":    { "type": "object", "properties": { "words": { "type": "array", "items": { "type": "string" } } } }
        }
      },
      "Margins": {
        "type": "object",
        "description": "Margin halaman dalam sentimeter",
        "properties": {
          "top":    { "type": "number" },
          "bottom": { "type": "number" },
          "left":   { "type": "number" },
          "right":  { "type": "number" }
        }
      },
      "DetectedError": {
        "type": "object",
        "properties": {
          "kind":        { "type": "string", "enum": ["grammar", "spelling", "misspelling", "informal", "punctuation", "capitalization", "format"] },
          "matchedText": { "type": "string" },
          "suggestion":  { "type": "string" },
          "replacement": { "type": "string" },
          "start":       { "type": "integer", "description": "Offset rune awal (inklusif)" },
          "end":         { "type": "integer", "description": "Offset rune akhir (eksklusif)" }
        }
      },
      "Result": {
        "type": "object",
        "properties": {
          "original":     { "type": "string" },
          "corrected":    { "type": "string", "description": "Teks dengan semua perbaikan otomatis diterapkan" },
          "editDistance": { "type": "integer" },
          "charCount":    { "type": "integer" },
          "errorCount":   { "type": "integer" },
          "errors":       { "type": "array", "items": { "$ref": "#/components/schemas/DetectedError" } }
        }
      }
    }
  }
}`

const redocHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Ejaan API Docs</title>
  <meta charset="utf-8"/>
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <redoc spec-url="/openapi.json" expand-responses="200" hide-download-button></redoc>
  <script src="https://cdn.jsdelivr.net/npm/redoc@latest/bundles/redoc.standalone.js"></script>
</body>
</html>`
