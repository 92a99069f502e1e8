package certificate

const stylesheet = `body{font-family:Helvetica,Arial,sans-serif;color:#1b4332;max-width:760px;margin:2rem auto}
h1{text-align:center;text-transform:uppercase;letter-spacing:.05em}
.number{background:#d8f3dc;border:1px solid #1b4332;text-align:center;padding:.5rem}
table{border-collapse:collapse;width:100%;margin:1rem 0}
th{background:#1b4332;color:#fff}
td,th{border:1px solid #52b788;padding:.3rem .5rem;font-size:.9rem}
tr.more td{font-style:italic}
.statement{border:1px solid #1b4332;background:#d8f3dc;padding:1rem;text-align:center}`

const statement = "This is to certify that the above-mentioned electronic waste was collected and " +
	"processed in accordance with responsible e-waste management practices and applicable " +
	"environmental regulations. All data storage devices have been securely wiped or " +
	"physically destroyed as appropriate."
